package builder

import (
	"fmt"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/resources"
	"github.com/go-drift/genui/pkg/view"
)

// request is an in-flight or completed drawable resolution for one
// attribute of one node. A completion applies only while its request is
// still the current one for that attribute and the node is still live.
type request struct {
	ref  descriptor.DrawableRef
	tint bool
}

func (b *Builder) applyBackground(rc *resources.Context, n view.Node, a attrSet) {
	attr, ok := a.m[descriptor.KeyBackground]
	if !ok {
		b.cancel(n, descriptor.KeyBackground)
		n.Props().Background = nil
		return
	}

	var ref descriptor.DrawableRef
	if r, ok := attr.AsDrawable(); ok {
		ref = r
	} else if token, ok := attr.AsColor(); ok {
		ref = descriptor.DrawableRef{Kind: descriptor.DrawableShape, Fill: token}
	} else {
		a.mismatch(descriptor.KeyBackground, descriptor.AttrDrawable, attr)
		b.cancel(n, descriptor.KeyBackground)
		n.Props().Background = nil
		return
	}

	b.resolve(rc, n, descriptor.KeyBackground, request{ref: ref}, func(n view.Node, d *resources.Drawable) {
		n.Props().Background = d
	})
}

func (b *Builder) applyImage(rc *resources.Context, n *view.ImageNode, a attrSet) {
	attr, ok := a.m[descriptor.KeyImage]
	ref, isDrawable := attr.AsDrawable()
	if !ok || !isDrawable {
		if ok {
			a.mismatch(descriptor.KeyImage, descriptor.AttrDrawable, attr)
		}
		b.cancel(n, descriptor.KeyImage)
		n.SetImage(nil, false)
		return
	}

	tint := a.boolean(descriptor.KeyIconTinting, false)
	b.resolve(rc, n, descriptor.KeyImage, request{ref: ref, tint: tint}, func(v view.Node, d *resources.Drawable) {
		img := v.(*view.ImageNode)
		if d == nil || d.Image == nil {
			img.SetImage(nil, false)
			return
		}
		if !tint {
			img.SetImage(d.Image, false)
			return
		}
		accent, ok := rc.Color(resources.TokenIconAccent)
		if !ok {
			errors.Report(errors.ForView("builder.ApplyAttributes", errors.KindResource, string(v.ID()),
				fmt.Errorf("unknown color %q", resources.TokenIconAccent)))
			img.SetImage(d.Image, false)
			return
		}
		img.SetImage(resources.Tint(d.Image, accent), true)
	})
}

// resolve starts resolving req for the attribute key of n unless the same
// request is already current. apply runs on the UI thread if req is still
// current when the drawable arrives.
func (b *Builder) resolve(rc *resources.Context, n view.Node, key string, req request, apply func(view.Node, *resources.Drawable)) {
	reqs := b.requests[n]
	if cur, ok := reqs[key]; ok && *cur == req {
		return
	}
	if reqs == nil {
		reqs = make(map[string]*request)
		b.requests[n] = reqs
		n.OnDispose(func() { delete(b.requests, n) })
	}
	current := &req
	reqs[key] = current

	h := view.HandleOf(n)
	rc.ResolveDrawable(req.ref, func(d *resources.Drawable) {
		h.Apply(func(n view.Node) {
			if b.requests[n][key] != current {
				return
			}
			apply(n, d)
		})
	})
}

func (b *Builder) cancel(n view.Node, key string) {
	delete(b.requests[n], key)
}
