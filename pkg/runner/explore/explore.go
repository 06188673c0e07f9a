package explore

import (
	"context"
	"errors"

	"github.com/GLADI8R/landscape2/pkg/runner/source"
	"github.com/GLADI8R/landscape2/pkg/tui/app"
)

// Explore opens the interactive landscape explorer.
type Explore struct {
	Source *source.Source
	Anchor string
}

func (e *Explore) Do(ctx context.Context) error {
	if e.Source == nil {
		return errors.New("can not explore, no dataset source")
	}
	ds, err := e.Source.Dataset(ctx)
	if err != nil {
		return err
	}

	var opts []app.Option
	if e.Anchor != "" {
		opts = append(opts, app.WithAnchor(e.Anchor))
	}
	if e.Source.Path != "" {
		// Local dataset files reload live while the explorer runs.
		opts = append(opts, app.WithDatasetWatch(e.Source.Path, e.Source.Dataset))
	}
	m, err := app.New(ds, opts...)
	if err != nil {
		return err
	}
	return m.Run()
}
