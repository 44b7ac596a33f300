package descriptor

// Common attribute keys, applied to every kind.
const (
	KeyPaddingStart       = "padding_start"
	KeyPaddingTop         = "padding_top"
	KeyPaddingEnd         = "padding_end"
	KeyPaddingBottom      = "padding_bottom"
	KeyBackground         = "background"
	KeyContentDescription = "content_description"
	KeyVisible            = "visible"
	KeyEnabled            = "enabled"
	KeyClickable          = "clickable"

	// Layout parameters. Width and height are MatchParent, WrapContent, or dp.
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyWeight       = "weight"
	KeyMarginStart  = "margin_start"
	KeyMarginTop    = "margin_top"
	KeyMarginEnd    = "margin_end"
	KeyMarginBottom = "margin_bottom"
	KeyGravity      = "gravity"
	KeyMinWidth     = "min_width"
	KeyMinHeight    = "min_height"

	// KeySlot places a child into a named slot of its parent
	// (expander: title/collapsed/expanded, toggle: left/right).
	KeySlot = "slot"
)

// Kind-specific attribute keys.
const (
	KeyText           = "text"
	KeyTextAppearance = "text_appearance"
	KeyTextGravity    = "text_gravity"
	KeyOrientation    = "orientation"
	KeyImage          = "image"
	KeyIconTinting    = "icon_tinting"
	KeyHint           = "hint"
	KeyInputType      = "input_type"
	KeyModel          = "model"
	KeyFocus          = "focus"
	KeyCheckbox       = "checkbox"
	KeyChevronStyle   = "chevron_style"
	KeyAddButtonText  = "add_button_text"
	KeyMultiple       = "multiple"
	KeyRowSpacing     = "row_spacing"
	KeyColumnSpacing  = "column_spacing"
	KeyHasEditButton  = "has_edit_button"
)

// Special layout sizes.
const (
	MatchParent = -1
	WrapContent = -2
)

// Slot names.
const (
	SlotTitle     = "title"
	SlotCollapsed = "collapsed"
	SlotExpanded  = "expanded"
	SlotLeft      = "left"
	SlotRight     = "right"
)
