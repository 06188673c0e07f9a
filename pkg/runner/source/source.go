// Package source resolves the dataset the commands operate on: a local file,
// a remote URL, or the cached copy of a previous fetch.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/GLADI8R/landscape2/pkg/data"
	"github.com/GLADI8R/landscape2/pkg/store"
)

// Source describes where the dataset comes from. A local path wins over a
// URL. Remote fetches go through the cache when one is configured; Refresh
// forces a fetch even when a cached copy exists.
type Source struct {
	Path    string
	URL     string
	Refresh bool
	Cache   *store.Cache
}

// Dataset loads and validates the dataset.
func (s *Source) Dataset(ctx context.Context) (*data.Dataset, error) {
	if s.Path != "" || s.URL == "" || s.Cache == nil {
		return data.Load(ctx, s.Path, s.URL)
	}

	if !s.Refresh {
		if raw, err := s.Cache.Get(s.URL); err == nil {
			ds, perr := data.Parse(raw)
			if perr == nil {
				return ds, nil
			}
			// A stale or truncated cache entry is not fatal, refetch.
			_ = s.Cache.Drop(s.URL)
		} else if !errors.Is(err, store.ErrMiss) {
			return nil, fmt.Errorf("reading cache: %w", err)
		}
	}

	raw, err := data.Read(ctx, "", s.URL)
	if err != nil {
		return nil, err
	}
	ds, err := data.Parse(raw)
	if err != nil {
		return nil, err
	}
	if perr := s.Cache.Put(s.URL, raw); perr != nil {
		return nil, fmt.Errorf("writing cache: %w", perr)
	}
	return ds, nil
}
