// Package querystate tracks the in-flight state of overlay queries.
//
// Every refine gets a new sequence number. Responses and stall ticks carry
// the number of the refine that produced them, and anything older than the
// latest refine is discarded.
package querystate

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Status is the provider-facing state of the latest query.
type Status int

const (
	// StatusIdle means no query is in flight.
	StatusIdle Status = iota
	// StatusLoading means the latest query is in flight.
	StatusLoading
	// StatusStalled means the latest query has outlived the stall delay.
	StatusStalled
	// StatusError means the latest query failed.
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusStalled:
		return "stalled"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Tracker issues queries and applies their responses in order.
type Tracker struct {
	search     driving.SearchService
	stallDelay time.Duration

	seq    uint64
	status Status
	query  string
	hits   []domain.Hit
	nbHits int
	err    error
}

// NewTracker creates a tracker backed by the search service.
func NewTracker(search driving.SearchService, stallDelay time.Duration) *Tracker {
	if stallDelay <= 0 {
		stallDelay = domain.DefaultStallDelay
	}
	return &Tracker{
		search:     search,
		stallDelay: stallDelay,
	}
}

// SetStallDelay changes the delay used by subsequent refines.
func (t *Tracker) SetStallDelay(d time.Duration) {
	if d > 0 {
		t.stallDelay = d
	}
}

// Refine starts a query for text and returns the commands that deliver its
// response and its stall tick.
func (t *Tracker) Refine(ctx context.Context, text string) tea.Cmd {
	t.seq++
	seq := t.seq
	t.query = text
	t.err = nil
	t.status = StatusLoading

	search := t.search
	run := func() tea.Msg {
		if search == nil {
			return messages.SearchCompleted{Seq: seq, Query: text, Err: domain.ErrSearchDisabled}
		}
		result, err := search.Search(ctx, text, domain.SearchOptions{})
		return messages.SearchCompleted{Seq: seq, Query: text, Result: result, Err: err}
	}
	stall := tea.Tick(t.stallDelay, func(time.Time) tea.Msg {
		return messages.SearchStalled{Seq: seq}
	})

	return tea.Batch(run, stall)
}

// Apply records a response. It returns false when the response belongs to
// a superseded query and was dropped.
func (t *Tracker) Apply(msg messages.SearchCompleted) bool {
	if msg.Seq != t.seq || t.status == StatusIdle {
		return false
	}

	if msg.Err != nil {
		t.status = StatusError
		t.err = msg.Err
		t.hits = nil
		t.nbHits = 0
		return true
	}

	t.status = StatusIdle
	t.err = nil
	t.hits = nil
	t.nbHits = 0
	if msg.Result != nil {
		t.hits = msg.Result.Hits
		t.nbHits = msg.Result.NbHits
	}
	return true
}

// MarkStalled flags the latest query as stalled. Ticks for superseded or
// already answered queries are ignored.
func (t *Tracker) MarkStalled(msg messages.SearchStalled) bool {
	if msg.Seq != t.seq || t.status != StatusLoading {
		return false
	}
	t.status = StatusStalled
	return true
}

// Abandon drops interest in the in-flight query without touching the
// current text or hits.
func (t *Tracker) Abandon() {
	t.seq++
	if t.status == StatusLoading || t.status == StatusStalled {
		t.status = StatusIdle
	}
}

// Reset abandons the in-flight query and clears text, hits and error.
func (t *Tracker) Reset() {
	t.Abandon()
	t.status = StatusIdle
	t.query = ""
	t.hits = nil
	t.nbHits = 0
	t.err = nil
}

// Status returns the state of the latest query.
func (t *Tracker) Status() Status {
	return t.status
}

// InFlight reports whether the latest query is loading or stalled.
func (t *Tracker) InFlight() bool {
	return t.status == StatusLoading || t.status == StatusStalled
}

// Stalled reports whether the latest query is stalled.
func (t *Tracker) Stalled() bool {
	return t.status == StatusStalled
}

// Query returns the text of the latest query.
func (t *Tracker) Query() string {
	return t.query
}

// Hits returns the hits of the latest answered query.
func (t *Tracker) Hits() []domain.Hit {
	return t.hits
}

// NbHits returns the provider's total hit count for the latest answer.
func (t *Tracker) NbHits() int {
	return t.nbHits
}

// Err returns the error of the latest query, if it failed.
func (t *Tracker) Err() error {
	return t.err
}

// Seq returns the sequence number of the latest refine.
func (t *Tracker) Seq() uint64 {
	return t.seq
}
