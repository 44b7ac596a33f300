// Package resources resolves the platform resources a view needs at build
// time: device-independent dimensions, semantic colors, text appearances,
// and drawables.
//
// A Context is passed explicitly into every builder call; nothing here reads
// ambient global state. Drawable resolution is asynchronous and delivers its
// result on the UI looper.
package resources

import (
	"math"

	"github.com/go-drift/genui/pkg/platform"
)

// Context is the rendering context threaded through view construction.
type Context struct {
	// Density is the number of pixels per dp.
	Density float64
	// Palette resolves color tokens.
	Palette *Palette
	// Drawables resolves drawable references. May be nil, in which case every
	// drawable resolves to nil.
	Drawables *DrawableLoader
	// Looper receives async completions. If nil, platform.Dispatch is used.
	// With neither, drawables are decoded and delivered synchronously on the
	// calling goroutine.
	Looper *platform.Looper
}

// NewContext returns a context with the given density and palette.
func NewContext(density float64, palette *Palette) *Context {
	if density <= 0 {
		density = 1
	}
	if palette == nil {
		palette = LightPalette()
	}
	return &Context{Density: density, Palette: palette}
}

// Px converts a dp value to pixels.
func (c *Context) Px(dp int) int {
	return int(math.Round(float64(dp) * c.density()))
}

// PxF converts a fractional dp value to pixels.
func (c *Context) PxF(dp float64) int {
	return int(math.Round(dp * c.density()))
}

// LayoutSize converts a layout width or height. Negative values are the
// MatchParent/WrapContent sentinels and pass through unchanged.
func (c *Context) LayoutSize(v int) int {
	if v > 0 {
		return c.Px(v)
	}
	return v
}

// Color resolves a palette token or literal.
func (c *Context) Color(token string) (Color, bool) {
	return c.Palette.Resolve(token)
}

func (c *Context) density() float64 {
	if c == nil || c.Density <= 0 {
		return 1
	}
	return c.Density
}

// Post schedules fn on the UI thread. It returns false without running fn
// if the looper is closed or no UI queue is available.
func (c *Context) Post(fn func()) bool {
	if c != nil && c.Looper != nil {
		return c.Looper.Post(fn)
	}
	return platform.Dispatch(fn)
}

// hasQueue reports whether completions can be posted to a UI queue.
func (c *Context) hasQueue() bool {
	return (c != nil && c.Looper != nil) || platform.Dispatching()
}

// deliver runs fn on the UI thread. It must be called from the UI thread:
// without a UI queue fn runs inline, and a closed looper drops it.
func (c *Context) deliver(fn func()) {
	if c.hasQueue() {
		c.Post(fn)
		return
	}
	fn()
}
