// Package query is the reusable request-to-UI-state adapter. A Query
// holds the {data, loading, error} triad for one resource and turns reads
// into bubbletea commands, re-issuing whenever the locator changes.
package query

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Result is the terminal outcome of one issued read. Seq identifies which
// request produced it, so callers can tell a stale response from the
// newest one.
type Result[T any] struct {
	Locator string
	Seq     int
	Data    T
	Err     error
}

// Query tracks one resource's fetch state. Exactly one of "loading" or a
// terminal data/error outcome holds at a time. The zero value is ready to
// use.
type Query[T any] struct {
	locator string
	seq     int
	data    T
	hasData bool
	loading bool
	err     string
}

func (q *Query[T]) Data() T         { return q.data }
func (q *Query[T]) HasData() bool   { return q.hasData }
func (q *Query[T]) Loading() bool   { return q.loading }
func (q *Query[T]) Err() string     { return q.err }
func (q *Query[T]) Locator() string { return q.locator }

// Fetch issues a read for locator. The triad resets to loading with the
// error cleared before the command runs. In-flight reads are not
// cancelled; their results may still arrive later.
func (q *Query[T]) Fetch(locator string, fn func() (T, error)) tea.Cmd {
	q.locator = locator
	q.seq++
	seq := q.seq
	q.loading = true
	q.err = ""

	return func() tea.Msg {
		data, err := fn()
		return Result[T]{Locator: locator, Seq: seq, Data: data, Err: err}
	}
}

// FetchIfChanged is the edge trigger: it issues a read only when locator
// differs from the one last issued. The first call always issues, so a
// constant locator produces exactly one read per mount.
func (q *Query[T]) FetchIfChanged(locator string, fn func() (T, error)) tea.Cmd {
	if q.seq > 0 && q.locator == locator {
		return nil
	}
	return q.Fetch(locator, fn)
}

// Apply folds a result into the triad. Results apply in arrival order:
// last resolved wins, even for a response issued before the current
// request. The return value reports whether the result belonged to the
// newest issued request.
func (q *Query[T]) Apply(msg Result[T]) bool {
	q.loading = false
	if msg.Err != nil {
		var zero T
		q.data = zero
		q.hasData = false
		q.err = msg.Err.Error()
	} else {
		q.data = msg.Data
		q.hasData = true
		q.err = ""
	}
	return msg.Seq == q.seq
}
