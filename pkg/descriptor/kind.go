package descriptor

import "fmt"

// Kind enumerates the view kinds a descriptor can materialize into.
type Kind int

const (
	KindText Kind = iota
	KindImage
	KindLinearLayout
	KindDivider
	KindTextInput
	KindToggleButton
	KindVerticalExpander
	KindVerticalExpanderAccordion
	KindChoiceList

	numKinds
)

var kindNames = [...]string{
	KindText:                      "Text",
	KindImage:                     "Image",
	KindLinearLayout:              "LinearLayout",
	KindDivider:                   "Divider",
	KindTextInput:                 "TextInput",
	KindToggleButton:              "ToggleButton",
	KindVerticalExpander:          "VerticalExpander",
	KindVerticalExpanderAccordion: "VerticalExpanderAccordion",
	KindChoiceList:                "ChoiceList",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// IsContainer reports whether views of this kind accept appended children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindLinearLayout, KindVerticalExpanderAccordion, KindChoiceList:
		return true
	default:
		return false
	}
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown view kind %q", s)
}
