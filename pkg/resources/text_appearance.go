package resources

// TextAppearance is a named text style.
type TextAppearance struct {
	Name   string
	SizeSp int
	Bold   bool
	// Color is a palette token.
	Color string
}

var textAppearances = map[string]TextAppearance{
	"TextAppearance.TextLarge.Primary":          {SizeSp: 16, Color: TokenDefaultText},
	"TextAppearance.TextMedium.Primary":         {SizeSp: 14, Color: TokenDefaultText},
	"TextAppearance.TextMedium.Secondary":       {SizeSp: 14, Color: TokenDefaultTextSecond},
	"TextAppearance.TextMediumThick.Primary":    {SizeSp: 14, Bold: true, Color: TokenDefaultText},
	"TextAppearance.TextSmall.Secondary":        {SizeSp: 12, Color: TokenDefaultTextSecond},
	"TextAppearance.Headline.Primary":           {SizeSp: 20, Bold: true, Color: TokenDefaultText},
	"TextAppearance.ErrorCaption":               {SizeSp: 12, Color: TokenError},
	"TextAppearance.TextAccentMediumThick.Blue": {SizeSp: 14, Bold: true, Color: TokenLink},
}

// LookupTextAppearance returns the named style.
func LookupTextAppearance(name string) (TextAppearance, bool) {
	ta, ok := textAppearances[name]
	if ok {
		ta.Name = name
	}
	return ta, ok
}
