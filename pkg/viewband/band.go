// Package viewband decides which rendered section currently counts as the
// active one. Sections register their vertical extent in document
// coordinates; a scan against the viewport reports sections entering the
// visibility band. The mechanism is independent of any particular rendering
// host: the content pane feeds it line geometry, but anything that can
// produce (top, height) pairs can drive it.
package viewband

// Band is the viewport sub-region a section must intersect to count as
// active: the rows from TopInset down to BottomFraction of the viewport
// height.
type Band struct {
	TopInset       int
	BottomFraction float64
}

// DefaultBand is the terminal rendition of the classic 20px / 97% band.
func DefaultBand() Band {
	return Band{TopInset: 1, BottomFraction: 0.97}
}

// Section is an observed region of the document.
type Section struct {
	ID     string
	Top    int
	Height int
}

// Enter reports a section crossing into the visibility band.
type Enter struct {
	ID string
}

// Tracker observes registered sections and reports band entries. It holds no
// reference to unmounted sections: SetSections atomically replaces the
// observed set, so stale sections can never fire after a regroup.
type Tracker struct {
	band     Band
	sections []Section
	inBand   map[string]bool
}

// NewTracker creates a tracker for the given band.
func NewTracker(band Band) *Tracker {
	if band.BottomFraction <= 0 || band.BottomFraction > 1 {
		band.BottomFraction = DefaultBand().BottomFraction
	}
	if band.TopInset < 0 {
		band.TopInset = 0
	}
	return &Tracker{band: band, inBand: make(map[string]bool)}
}

// SetSections replaces the observed sections, detaching every previous
// observation. Entry state is recomputed from scratch on the next Scan.
func (t *Tracker) SetSections(sections []Section) {
	t.sections = append(t.sections[:0:0], sections...)
	t.inBand = make(map[string]bool, len(sections))
}

// Scan evaluates every observed section against the viewport and returns the
// sections that newly entered the band, in document order. Sections already
// in the band do not fire again until they leave and re-enter. Both user and
// programmatic scrolls are reported identically; consumers must be
// idempotent.
func (t *Tracker) Scan(viewportTop, viewportHeight int) []Enter {
	if viewportHeight <= 0 {
		return nil
	}
	limit := int(float64(viewportHeight) * t.band.BottomFraction)
	if limit <= t.band.TopInset {
		limit = t.band.TopInset + 1
	}
	var entered []Enter
	for _, sec := range t.sections {
		if sec.Height <= 0 || sec.ID == "" {
			continue
		}
		relTop := sec.Top - viewportTop
		relBottom := relTop + sec.Height
		in := relBottom > t.band.TopInset && relTop < limit
		if in && !t.inBand[sec.ID] {
			entered = append(entered, Enter{ID: sec.ID})
		}
		t.inBand[sec.ID] = in
	}
	return entered
}

// Active returns the first section currently in the band for the given
// viewport, if any, without mutating entry state.
func (t *Tracker) Active(viewportTop, viewportHeight int) (string, bool) {
	if viewportHeight <= 0 {
		return "", false
	}
	limit := int(float64(viewportHeight) * t.band.BottomFraction)
	if limit <= t.band.TopInset {
		limit = t.band.TopInset + 1
	}
	for _, sec := range t.sections {
		if sec.Height <= 0 || sec.ID == "" {
			continue
		}
		relTop := sec.Top - viewportTop
		relBottom := relTop + sec.Height
		if relBottom > t.band.TopInset && relTop < limit {
			return sec.ID, true
		}
	}
	return "", false
}
