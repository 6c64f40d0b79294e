package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nfielder/gistwatch/internal/gitapi"
)

// Defaults for the fetch window. The since threshold is inclusive and is
// applied server-side against each gist's updated_at.
const (
	DefaultLimit = 100
	DefaultSince = "2022-01-01T00:00:00Z"
)

// Phase is the state of the current fetch cycle. Exactly one phase holds at
// a time; gists and an error message can never coexist.
type Phase int

const (
	// PhaseLoading means a fetch cycle is in flight.
	PhaseLoading Phase = iota
	// PhaseReady means the last cycle completed and Gists is populated.
	PhaseReady
	// PhaseErrored means the last cycle failed and ErrorMessage is set.
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// Snapshot is the read-only view the presentation layer consumes.
type Snapshot struct {
	Phase        Phase
	Gists        []gitapi.Gist // populated only when Phase == PhaseReady
	ErrorMessage string        // populated only when Phase == PhaseErrored
	Since        string
	FetchedAt    time.Time
}

// Controller owns the fetch → sort → store pipeline for one user's gists.
// Results are tagged with a monotonically increasing cycle identifier so a
// response from a superseded cycle can never overwrite a newer one; an
// in-flight request itself is not cancelled.
type Controller struct {
	mu       sync.RWMutex
	fetcher  gitapi.GistFetcher
	username string
	limit    int
	since    string
	logger   *log.Logger

	cycle uint64
	snap  Snapshot
}

// NewController builds a Controller. A zero or negative limit falls back to
// DefaultLimit; an empty since threshold falls back to DefaultSince. logger
// may be nil.
func NewController(fetcher gitapi.GistFetcher, username string, limit int, since string, logger *log.Logger) *Controller {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if since == "" {
		since = DefaultSince
	}
	return &Controller{
		fetcher:  fetcher,
		username: username,
		limit:    limit,
		since:    since,
		logger:   logger,
		snap:     Snapshot{Phase: PhaseLoading, Since: since},
	}
}

// Username returns the configured GitHub username.
func (c *Controller) Username() string { return c.username }

// Since returns the configured since threshold, for display.
func (c *Controller) Since() string { return c.since }

// Begin starts a new fetch cycle: the phase moves to Loading and any stored
// gists or error message from the previous cycle are cleared. The returned
// cycle identifier must be handed back to Complete or Fail.
func (c *Controller) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cycle++
	c.snap = Snapshot{Phase: PhaseLoading, Since: c.since}
	return c.cycle
}

// Complete stores the fetched gists sorted most recently updated first and
// moves the phase to Ready. Results from a superseded cycle are discarded.
func (c *Controller) Complete(cycle uint64, gists []gitapi.Gist) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cycle != c.cycle {
		if c.logger != nil {
			c.logger.Debug("discarding stale fetch result", "cycle", cycle, "current", c.cycle)
		}
		return
	}

	sorted := cloneGists(gists)
	gitapi.SortByUpdatedDesc(sorted)
	c.snap = Snapshot{
		Phase:     PhaseReady,
		Gists:     sorted,
		Since:     c.since,
		FetchedAt: time.Now(),
	}
}

// Fail records the failure as a user-facing message and moves the phase to
// Errored. Failures from a superseded cycle are discarded.
func (c *Controller) Fail(cycle uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cycle != c.cycle {
		if c.logger != nil {
			c.logger.Debug("discarding stale fetch failure", "cycle", cycle, "current", c.cycle)
		}
		return
	}

	c.snap = Snapshot{
		Phase:        PhaseErrored,
		ErrorMessage: fmt.Sprintf("failed to load gists for %s: %v", c.username, err),
		Since:        c.since,
		FetchedAt:    time.Now(),
	}
	if c.logger != nil {
		c.logger.Error("gist fetch failed", "user", c.username, "err", err)
	}
}

// Refresh runs one full fetch cycle and returns the resulting snapshot.
func (c *Controller) Refresh(ctx context.Context) Snapshot {
	cycle := c.Begin()

	gists, err := c.fetcher.FetchGists(ctx, c.username, c.limit, c.since)
	if err != nil {
		c.Fail(cycle, err)
	} else {
		c.Complete(cycle, gists)
	}
	return c.Snapshot()
}

// Snapshot returns a copy of the current snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.snap
	snap.Gists = cloneGists(c.snap.Gists)
	return snap
}

func cloneGists(gists []gitapi.Gist) []gitapi.Gist {
	if gists == nil {
		return nil
	}
	dup := make([]gitapi.Gist, len(gists))
	copy(dup, gists)
	return dup
}
