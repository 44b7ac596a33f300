package resources

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/errors"
)

// Drawable is a resolved drawable. Exactly one of Image or Shape is set.
type Drawable struct {
	Ref   descriptor.DrawableRef
	Image image.Image
	Shape *Shape
}

// Shape is a resolved rectangle shape. Sizes are in pixels.
type Shape struct {
	Fill         Color
	HasFill      bool
	CornerRadius int
	Stroke       Color
	HasStroke    bool
	StrokeWidth  int
}

// IconDir is the directory within the resource filesystem holding named icons.
const IconDir = "icons"

type cacheKey struct {
	ref     descriptor.DrawableRef
	density float64
}

// DrawableLoader decodes bitmaps and icons from a filesystem off the UI
// thread and caches the results.
type DrawableLoader struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[cacheKey]image.Image
}

// NewDrawableLoader creates a loader reading from fsys.
func NewDrawableLoader(fsys fs.FS) *DrawableLoader {
	return &DrawableLoader{fsys: fsys, cache: make(map[cacheKey]image.Image)}
}

// ResolveDrawable resolves ref and delivers the result to done on the UI
// thread. It must be called from the UI thread. done receives nil if the
// drawable cannot be resolved; the failure is reported to the error handler
// and is never fatal. Results arriving after the looper was closed are
// dropped.
func (c *Context) ResolveDrawable(ref descriptor.DrawableRef, done func(*Drawable)) {
	if ref.Kind == descriptor.DrawableShape {
		d := c.resolveShape(ref)
		c.deliver(func() { done(d) })
		return
	}
	if c == nil || c.Drawables == nil {
		reportDrawable(ref, fmt.Errorf("no drawable loader configured"))
		c.deliver(func() { done(nil) })
		return
	}

	l := c.Drawables
	key := cacheKey{ref: ref, density: c.density()}
	if img, ok := l.cached(key); ok {
		c.deliver(func() { done(&Drawable{Ref: ref, Image: img}) })
		return
	}
	if !c.hasQueue() {
		img, err := l.load(key, c)
		if err != nil {
			reportDrawable(ref, err)
			done(nil)
			return
		}
		done(&Drawable{Ref: ref, Image: img})
		return
	}
	go func() {
		img, err := l.load(key, c)
		if err != nil {
			reportDrawable(ref, err)
			c.Post(func() { done(nil) })
			return
		}
		c.Post(func() { done(&Drawable{Ref: ref, Image: img}) })
	}()
}

// Preload decodes every bitmap and icon in refs into the cache using at most
// workers goroutines. It returns the first decode error.
func (c *Context) Preload(ctx context.Context, refs []descriptor.DrawableRef, workers int) error {
	if c.Drawables == nil {
		return nil
	}
	if workers <= 0 {
		workers = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, ref := range refs {
		if ref.Kind == descriptor.DrawableShape {
			continue
		}
		key := cacheKey{ref: ref, density: c.density()}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := c.Drawables.load(key, c)
			return err
		})
	}
	return g.Wait()
}

func (c *Context) resolveShape(ref descriptor.DrawableRef) *Drawable {
	s := &Shape{
		CornerRadius: c.Px(ref.CornerRadius),
		StrokeWidth:  c.Px(ref.StrokeWidth),
	}
	if ref.Fill != "" {
		if fill, ok := c.Color(ref.Fill); ok {
			s.Fill, s.HasFill = fill, true
		} else {
			reportDrawable(ref, fmt.Errorf("unknown fill color %q", ref.Fill))
		}
	}
	if ref.Stroke != "" {
		if stroke, ok := c.Color(ref.Stroke); ok {
			s.Stroke, s.HasStroke = stroke, true
		} else {
			reportDrawable(ref, fmt.Errorf("unknown stroke color %q", ref.Stroke))
		}
	}
	return &Drawable{Ref: ref, Shape: s}
}

func (l *DrawableLoader) cached(key cacheKey) (image.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.cache[key]
	return img, ok
}

func (l *DrawableLoader) load(key cacheKey, c *Context) (image.Image, error) {
	if img, ok := l.cached(key); ok {
		return img, nil
	}

	name := key.ref.Path
	if key.ref.Kind == descriptor.DrawableIcon {
		name = path.Join(IconDir, key.ref.Icon+".png")
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if key.ref.Width > 0 && key.ref.Height > 0 {
		img = scale(img, c.Px(key.ref.Width), c.Px(key.ref.Height))
	}

	l.mu.Lock()
	l.cache[key] = img
	l.mu.Unlock()
	return img, nil
}

func scale(src image.Image, w, h int) image.Image {
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Tint returns src recolored with c, keeping src's alpha (SRC_IN).
func Tint(src image.Image, c Color) image.Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, src, b.Min, draw.Src)
	return dst
}

func reportDrawable(ref descriptor.DrawableRef, err error) {
	errors.Report(errors.New("resources.ResolveDrawable", errors.KindResource,
		fmt.Errorf("%s: %w", ref, err)))
}
