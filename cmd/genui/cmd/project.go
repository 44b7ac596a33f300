package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-drift/genui/cmd/genui/internal/config"
	"github.com/go-drift/genui/pkg/builder"
	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/interaction"
	"github.com/go-drift/genui/pkg/platform"
	"github.com/go-drift/genui/pkg/resources"
	"github.com/go-drift/genui/pkg/view"
)

// settleTimeout bounds how long a headless build waits for drawables that
// were not preloaded.
const settleTimeout = 500 * time.Millisecond

// loadProject resolves genui.yaml for the working directory and installs
// the configured error handler.
func loadProject() (*config.Resolved, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := config.FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})
	return cfg, nil
}

// readTree parses a tree file and applies the project's minimum schema version.
func readTree(path string, cfg *config.Resolved) (*descriptor.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tree, err := descriptor.ParseTree(data, descriptor.FormatForPath(path))
	if err != nil {
		return nil, err
	}
	if err := descriptor.CheckSchemaVersion(tree.SchemaVersion, cfg.MinSchemaVersion); err != nil {
		return nil, err
	}
	return tree, nil
}

// screen is a headless UI thread that trees are built on.
type screen struct {
	rc      *resources.Context
	looper  *platform.Looper
	builder *builder.Builder
	workers int
}

func newScreen(cfg *config.Resolved, density float64, palette *resources.Palette) *screen {
	rc := resources.NewContext(density, palette)
	rc.Looper = platform.NewLooper()
	if info, err := os.Stat(cfg.ResourceDir); err == nil && info.IsDir() {
		rc.Drawables = resources.NewDrawableLoader(os.DirFS(cfg.ResourceDir))
	}
	return &screen{
		rc:      rc,
		looper:  rc.Looper,
		builder: builder.New(interaction.NewDispatcher(nil)),
		workers: cfg.PreloadWorkers,
	}
}

// build preloads the tree's drawables, builds it, and drains the looper so
// the returned tree carries every resolved drawable.
func (s *screen) build(ctx context.Context, d descriptor.Descriptor) (view.Node, error) {
	settle := false
	if err := s.rc.Preload(ctx, drawableRefs(d), s.workers); err != nil {
		errors.Report(errors.New("genui.preload", errors.KindResource, err))
		settle = true
	}

	root, err := s.builder.BuildTree(s.rc, d)
	if err != nil {
		return nil, err
	}
	s.looper.RunPending()
	if settle {
		ctx, cancel := context.WithTimeout(ctx, settleTimeout)
		defer cancel()
		_ = s.looper.Run(ctx)
	}
	return root, nil
}

func drawableRefs(d descriptor.Descriptor) []descriptor.DrawableRef {
	var refs []descriptor.DrawableRef
	d.Walk(func(d descriptor.Descriptor) {
		for _, key := range []string{descriptor.KeyBackground, descriptor.KeyImage} {
			if a, ok := d.Attr(key); ok {
				if ref, ok := a.AsDrawable(); ok {
					refs = append(refs, ref)
				}
			}
		}
	})
	return refs
}
