package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNoSource is returned when neither a file path nor a URL is provided.
var ErrNoSource = errors.New("no data source provided")

const fetchTimeout = 30 * time.Second

// Read returns the raw dataset document from a local file or a URL. Exactly
// one of path/url should be set; path wins when both are.
func Read(ctx context.Context, path, url string) ([]byte, error) {
	switch {
	case path != "":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset file: %w", err)
		}
		return raw, nil
	case url != "":
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build dataset request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch dataset: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch dataset: unexpected status %d", resp.StatusCode)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read dataset response: %w", err)
		}
		return raw, nil
	default:
		return nil, ErrNoSource
	}
}

// Parse decodes and validates a dataset document. Items missing the fields
// the grouper depends on make the whole load fail; they are never silently
// dropped.
func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	normalize(&ds)
	if err := validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Load reads and parses a dataset in one step.
func Load(ctx context.Context, path, url string) (*Dataset, error) {
	raw, err := Read(ctx, path, url)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func normalize(ds *Dataset) {
	ds.Foundation = strings.TrimSpace(ds.Foundation)
	for idx := range ds.Items {
		it := &ds.Items[idx]
		it.ID = strings.TrimSpace(it.ID)
		it.Name = strings.TrimSpace(it.Name)
		it.Category = strings.TrimSpace(it.Category)
		it.Subcategory = strings.TrimSpace(it.Subcategory)
		it.Maturity = strings.TrimSpace(it.Maturity)
		it.MemberSubcategory = strings.TrimSpace(it.MemberSubcategory)
		keepFirstPrimary(it.Repositories)
	}
}

// keepFirstPrimary clears extra primary marks so the invariant "at most one
// primary repository" holds regardless of the input.
func keepFirstPrimary(repos []Repository) {
	found := false
	for idx := range repos {
		if !repos[idx].Primary {
			continue
		}
		if found {
			repos[idx].Primary = false
			continue
		}
		found = true
	}
}

func validate(ds *Dataset) error {
	var problems []string
	seen := make(map[string]string, len(ds.Items))
	for _, it := range ds.Items {
		label := it.Name
		if label == "" {
			label = it.ID
		}
		if label == "" {
			label = "(unnamed item)"
		}
		switch {
		case it.ID == "":
			problems = append(problems, fmt.Sprintf("%s: missing id", label))
		case it.Name == "":
			problems = append(problems, fmt.Sprintf("%s: missing name", label))
		case it.Category == "":
			problems = append(problems, fmt.Sprintf("%s: missing category", label))
		case it.Subcategory == "":
			problems = append(problems, fmt.Sprintf("%s: missing subcategory", label))
		}
		if it.ID != "" {
			if prev, dup := seen[it.ID]; dup {
				problems = append(problems, fmt.Sprintf("%s: duplicate id %q (also used by %s)", label, it.ID, prev))
			} else {
				seen[it.ID] = label
			}
		}
	}
	if len(problems) == 0 {
		return nil
	}
	const maxReported = 10
	if len(problems) > maxReported {
		problems = append(problems[:maxReported], fmt.Sprintf("... and %d more", len(problems)-maxReported))
	}
	return fmt.Errorf("invalid dataset: %s", strings.Join(problems, "; "))
}
