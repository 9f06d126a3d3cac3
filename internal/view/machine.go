package view

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/shared"
)

// Machine tracks the active view and the loaded collection.
type Machine struct {
	state      State
	sheets     []models.SheetRecord
	loaded     bool
	loadErr    error
	generation int
	logger     *log.Logger
}

// NewMachine creates a machine in the Loading state.
func NewMachine(logger *log.Logger) *Machine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Machine{state: State{Kind: Loading}, logger: logger}
}

// State returns the active view.
func (m *Machine) State() State { return m.state }

// Panes returns the visibility toggles for the active view.
func (m *Machine) Panes() Panes { return PanesFor(m.state) }

// LoadErr returns the error recorded by [Machine.Failed], if any.
func (m *Machine) LoadErr() error { return m.loadErr }

// Generation increments every time the Detail view is entered.
func (m *Machine) Generation() int { return m.generation }

// Sheets returns a copy of the loaded collection in its original order.
func (m *Machine) Sheets() []models.SheetRecord {
	out := make([]models.SheetRecord, len(m.sheets))
	copy(out, m.sheets)
	return out
}

// Current returns the record shown by the Detail view.
func (m *Machine) Current() (models.SheetRecord, bool) {
	if m.state.Kind != Detail {
		return models.SheetRecord{}, false
	}
	return models.FindSheet(m.sheets, m.state.SheetID)
}

// Loaded hands the collection to the machine and moves Loading to List.
func (m *Machine) Loaded(sheets []models.SheetRecord) error {
	if m.loaded || m.loadErr != nil {
		return fmt.Errorf("%w: collection already settled", shared.ErrInvalidTransition)
	}

	m.sheets = make([]models.SheetRecord, len(sheets))
	copy(m.sheets, sheets)
	m.loaded = true
	m.state = State{Kind: List}
	m.logger.Debug("sheets loaded", "count", len(sheets))
	return nil
}

// Failed records a load failure. The machine stays in Loading and refuses further transitions.
func (m *Machine) Failed(err error) {
	if m.loaded {
		return
	}
	if err == nil {
		err = shared.ErrNotLoaded
	}
	m.loadErr = err
	m.logger.Error("error loading work instruction sheets", "err", err)
}

// Select moves List to Detail(id).
func (m *Machine) Select(id string) ([]Event, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	if m.state.Kind != List {
		return nil, fmt.Errorf("%w: select from %s", shared.ErrInvalidTransition, m.state)
	}
	if err := m.enterDetail(id); err != nil {
		return nil, err
	}
	return recorded(DetailEntry(id)), nil
}

// Back moves Detail to List. From List it does nothing.
func (m *Machine) Back() ([]Event, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	if m.state.Kind != Detail {
		return nil, nil
	}
	m.state = State{Kind: List}
	return recorded(ListEntry()), nil
}

// Restore replays a history entry. A nil entry, a list entry or a detail entry whose sheet is gone
// all land on List. Replays emit no events.
func (m *Machine) Restore(entry *Entry) error {
	if err := m.ready(); err != nil {
		return err
	}

	if entry != nil && entry.View == EntryDetail && entry.SheetID != "" {
		if err := m.enterDetail(entry.SheetID); err == nil {
			return nil
		}
	}

	m.state = State{Kind: List}
	return nil
}

func (m *Machine) ready() error {
	if m.loadErr != nil {
		return fmt.Errorf("%w: %v", shared.ErrNotLoaded, m.loadErr)
	}
	if !m.loaded {
		return shared.ErrNotLoaded
	}
	return nil
}

func (m *Machine) enterDetail(id string) error {
	if _, ok := models.FindSheet(m.sheets, id); !ok {
		m.logger.Warn("sheet not found", "id", id)
		return fmt.Errorf("%w: %q", shared.ErrUnknownSheetID, id)
	}
	m.state = State{Kind: Detail, SheetID: id}
	m.generation++
	return nil
}
