package resources

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha byte.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// NRGBA converts c for use with the image packages.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColorLiteral parses #RRGGBB or #AARRGGBB.
func ParseColorLiteral(s string) (Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return 0, false
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	if len(hex) == 6 {
		n |= 0xFF000000
	}
	return Color(n), true
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)

// Palette maps semantic color tokens to colors.
type Palette struct {
	Name   string
	tokens map[string]Color
}

// NewPalette creates a palette from the given tokens.
func NewPalette(name string, tokens map[string]Color) *Palette {
	p := &Palette{Name: name, tokens: make(map[string]Color, len(tokens))}
	for k, v := range tokens {
		p.tokens[k] = v
	}
	return p
}

// Resolve looks up a token. Color literals are accepted as well.
// Unknown tokens return ok=false and leave the caller to keep its default.
func (p *Palette) Resolve(token string) (Color, bool) {
	if c, ok := ParseColorLiteral(token); ok {
		return c, true
	}
	if p == nil {
		return 0, false
	}
	c, ok := p.tokens[token]
	return c, ok
}

// With returns a copy of p with token overridden.
func (p *Palette) With(token string, c Color) *Palette {
	cp := NewPalette(p.Name, p.tokens)
	cp.tokens[token] = c
	return cp
}

// Semantic tokens shared by the light and dark palettes.
const (
	TokenPrimary           = "colorPrimary"
	TokenOnPrimary         = "colorOnPrimary"
	TokenSurface           = "colorSurface"
	TokenOnSurface         = "colorOnSurface"
	TokenOnSurfaceVariant  = "colorOnSurfaceVariant"
	TokenError             = "colorError"
	TokenDivider           = "colorDivider"
	TokenIconAccent        = "colorIconAccent1"
	TokenDefaultText       = "default_text_color"
	TokenDefaultTextSecond = "default_text_color_secondary"
	TokenLink              = "default_text_color_link"
)

// LightPalette returns the default light palette.
func LightPalette() *Palette {
	return NewPalette("light", map[string]Color{
		TokenPrimary:           Color(0xFF1A73E8),
		TokenOnPrimary:         ColorWhite,
		TokenSurface:           ColorWhite,
		TokenOnSurface:         Color(0xFF202124),
		TokenOnSurfaceVariant:  Color(0xFF5F6368),
		TokenError:             Color(0xFFD93025),
		TokenDivider:           Color(0x1F000000),
		TokenIconAccent:        Color(0xFF1A73E8),
		TokenDefaultText:       Color(0xFF202124),
		TokenDefaultTextSecond: Color(0xFF5F6368),
		TokenLink:              Color(0xFF1A73E8),
	})
}

// DarkPalette returns the default dark palette.
func DarkPalette() *Palette {
	return NewPalette("dark", map[string]Color{
		TokenPrimary:           Color(0xFF8AB4F8),
		TokenOnPrimary:         Color(0xFF202124),
		TokenSurface:           Color(0xFF202124),
		TokenOnSurface:         Color(0xFFE8EAED),
		TokenOnSurfaceVariant:  Color(0xFF9AA0A6),
		TokenError:             Color(0xFFF28B82),
		TokenDivider:           Color(0x1FFFFFFF),
		TokenIconAccent:        Color(0xFF8AB4F8),
		TokenDefaultText:       Color(0xFFE8EAED),
		TokenDefaultTextSecond: Color(0xFF9AA0A6),
		TokenLink:              Color(0xFF8AB4F8),
	})
}

// PaletteByName returns the palette for "light" or "dark".
func PaletteByName(name string) (*Palette, error) {
	switch name {
	case "", "light":
		return LightPalette(), nil
	case "dark":
		return DarkPalette(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q (use light or dark)", name)
	}
}
