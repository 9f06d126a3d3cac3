// Package history mirrors view transitions into a navigation history and replays entries back.
//
// The [Adapter] never fetches or renders. It records [view.NavigationRecorded] events on a [Platform] and
// turns back/forward movement into [view.Machine.Restore] calls.
package history

import (
	"net/url"
	"strings"

	"github.com/desertthunder/wis/internal/view"
)

// Platform is the navigation history the adapter writes to.
type Platform interface {
	// Push appends an entry and makes it current. location is the address shown for it.
	Push(entry view.Entry, location string)
	// Back moves to the previous entry. ok is false at the start of history.
	Back() (entry *view.Entry, ok bool)
	// Forward moves to the next entry. ok is false at the end of history.
	Forward() (entry *view.Entry, ok bool)
}

// Location returns the address for entry: a fragment holding the escaped sheet id for detail entries and
// the base path otherwise.
func Location(basePath string, entry view.Entry) string {
	if basePath == "" {
		basePath = "/"
	}
	if entry.View == view.EntryDetail && entry.SheetID != "" {
		return strings.TrimSuffix(basePath, "#") + "#" + (&url.URL{Fragment: entry.SheetID}).EscapedFragment()
	}
	return basePath
}

// Adapter couples a [view.Machine] with a [Platform].
type Adapter struct {
	machine  *view.Machine
	platform Platform
	basePath string
}

// NewAdapter creates an adapter. basePath is the address of the list view.
func NewAdapter(m *view.Machine, p Platform, basePath string) *Adapter {
	if basePath == "" {
		basePath = "/"
	}
	return &Adapter{machine: m, platform: p, basePath: basePath}
}

// Record pushes every NavigationRecorded event onto the platform.
func (a *Adapter) Record(events []view.Event) {
	for _, ev := range events {
		if ev.Kind != view.NavigationRecorded {
			continue
		}
		a.platform.Push(ev.Entry, Location(a.basePath, ev.Entry))
	}
}

// Select opens the detail view for id and records it.
func (a *Adapter) Select(id string) error {
	events, err := a.machine.Select(id)
	if err != nil {
		return err
	}
	a.Record(events)
	return nil
}

// Back returns to the list view and records it.
func (a *Adapter) Back() error {
	events, err := a.machine.Back()
	if err != nil {
		return err
	}
	a.Record(events)
	return nil
}

// Replay restores the view an entry describes. A nil entry means the initial page entry.
func (a *Adapter) Replay(entry *view.Entry) error {
	return a.machine.Restore(entry)
}

// StepBack moves the platform back one entry and replays it. It reports false at the start of history.
func (a *Adapter) StepBack() (bool, error) {
	entry, ok := a.platform.Back()
	if !ok {
		return false, nil
	}
	return true, a.Replay(entry)
}

// StepForward moves the platform forward one entry and replays it. It reports false at the end of history.
func (a *Adapter) StepForward() (bool, error) {
	entry, ok := a.platform.Forward()
	if !ok {
		return false, nil
	}
	return true, a.Replay(entry)
}
