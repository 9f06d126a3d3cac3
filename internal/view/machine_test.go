package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/shared"
	tu "github.com/desertthunder/wis/internal/testing"
)

func newLoaded(t *testing.T, sheets []models.SheetRecord) (*Machine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	m := NewMachine(shared.NewLogger(&buf))
	if err := m.Loaded(sheets); err != nil {
		t.Fatalf("Loaded failed: %v", err)
	}
	return m, &buf
}

func assertOnePane(t *testing.T, m *Machine) {
	t.Helper()
	p := m.Panes()
	visible := 0
	for _, v := range []bool{p.Loading, p.List, p.Detail} {
		if v {
			visible++
		}
	}
	if visible != 1 {
		t.Errorf("expected exactly one visible pane, got %+v", p)
	}
}

func TestMachine(t *testing.T) {
	t.Run("starts in Loading", func(t *testing.T) {
		m := NewMachine(nil)
		if m.State().Kind != Loading {
			t.Errorf("expected Loading, got %s", m.State())
		}
		assertOnePane(t, m)
	})

	t.Run("Loaded moves to List", func(t *testing.T) {
		m, _ := newLoaded(t, tu.SampleSheets())
		if m.State().Kind != List {
			t.Errorf("expected List, got %s", m.State())
		}
		if len(m.Sheets()) != 3 {
			t.Errorf("expected 3 sheets, got %d", len(m.Sheets()))
		}
		assertOnePane(t, m)
	})

	t.Run("Loaded twice is rejected", func(t *testing.T) {
		m, _ := newLoaded(t, tu.SampleSheets())
		if err := m.Loaded(nil); !errors.Is(err, shared.ErrInvalidTransition) {
			t.Errorf("expected ErrInvalidTransition, got %v", err)
		}
		if len(m.Sheets()) != 3 {
			t.Error("expected collection to be unchanged")
		}
	})

	t.Run("collection is not shared with callers", func(t *testing.T) {
		src := tu.SampleSheets()
		m, _ := newLoaded(t, src)
		src[0].SheetName = "mutated"
		got := m.Sheets()
		got[1].SheetName = "mutated too"

		if m.Sheets()[0].SheetName != "Torque Spec" || m.Sheets()[1].SheetName != "Bolt Pattern" {
			t.Error("expected machine collection to be immutable")
		}
	})

	t.Run("Select known id", func(t *testing.T) {
		m, _ := newLoaded(t, tu.SampleSheets())

		events, err := m.Select("b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.State() != (State{Kind: Detail, SheetID: "b"}) {
			t.Errorf("expected detail(b), got %s", m.State())
		}
		if len(events) != 1 || events[0].Kind != NavigationRecorded || events[0].Entry != DetailEntry("b") {
			t.Errorf("unexpected events %+v", events)
		}

		sheet, ok := m.Current()
		if !ok {
			t.Fatal("expected current sheet")
		}
		want := tu.SampleSheets()[1]
		if sheet != want {
			t.Errorf("expected %+v, got %+v", want, sheet)
		}
		assertOnePane(t, m)
	})

	t.Run("Select unknown id keeps List and logs", func(t *testing.T) {
		m, logs := newLoaded(t, tu.SampleSheets())

		events, err := m.Select("missing")
		if !errors.Is(err, shared.ErrUnknownSheetID) {
			t.Errorf("expected ErrUnknownSheetID, got %v", err)
		}
		if events != nil {
			t.Errorf("expected no events, got %+v", events)
		}
		if m.State().Kind != List {
			t.Errorf("expected List, got %s", m.State())
		}
		if !strings.Contains(logs.String(), "sheet not found") {
			t.Errorf("expected warning to be logged, got %q", logs.String())
		}
		if m.Generation() != 0 {
			t.Errorf("expected generation to stay 0, got %d", m.Generation())
		}
	})

	t.Run("Select from Detail is rejected", func(t *testing.T) {
		m, _ := newLoaded(t, tu.SampleSheets())
		m.Select("a")

		if _, err := m.Select("b"); !errors.Is(err, shared.ErrInvalidTransition) {
			t.Errorf("expected ErrInvalidTransition, got %v", err)
		}
		if m.State().SheetID != "a" {
			t.Errorf("expected detail(a) to be kept, got %s", m.State())
		}
	})

	t.Run("Back from Detail", func(t *testing.T) {
		m, _ := newLoaded(t, tu.SampleSheets())
		m.Select("a")

		events, err := m.Back()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.State().Kind != List {
			t.Errorf("expected List, got %s", m.State())
		}
		if len(events) != 1 || events[0].Entry != ListEntry() {
			t.Errorf("unexpected events %+v", events)
		}
		if _, ok := m.Current(); ok {
			t.Error("expected no current sheet in List")
		}
	})

	t.Run("Back from List is a no-op", func(t *testing.T) {
		m, _ := newLoaded(t, tu.SampleSheets())

		events, err := m.Back()
		if err != nil || events != nil {
			t.Errorf("expected no-op, got events=%+v err=%v", events, err)
		}
		if m.State().Kind != List {
			t.Errorf("expected List, got %s", m.State())
		}
	})

	t.Run("generation increments per Detail entry", func(t *testing.T) {
		m, _ := newLoaded(t, tu.SampleSheets())
		m.Select("a")
		m.Back()
		m.Select("a")

		if m.Generation() != 2 {
			t.Errorf("expected generation 2, got %d", m.Generation())
		}
	})

	t.Run("transitions before load are rejected", func(t *testing.T) {
		m := NewMachine(nil)

		if _, err := m.Select("a"); !errors.Is(err, shared.ErrNotLoaded) {
			t.Errorf("Select: expected ErrNotLoaded, got %v", err)
		}
		if _, err := m.Back(); !errors.Is(err, shared.ErrNotLoaded) {
			t.Errorf("Back: expected ErrNotLoaded, got %v", err)
		}
		if err := m.Restore(nil); !errors.Is(err, shared.ErrNotLoaded) {
			t.Errorf("Restore: expected ErrNotLoaded, got %v", err)
		}
		if m.State().Kind != Loading {
			t.Errorf("expected Loading, got %s", m.State())
		}
	})
}

func TestMachineFailed(t *testing.T) {
	var buf bytes.Buffer
	m := NewMachine(shared.NewLogger(&buf))
	loadErr := errors.New("HTTP error! status: 404")
	m.Failed(loadErr)

	t.Run("stays in Loading with the error recorded", func(t *testing.T) {
		if m.State().Kind != Loading {
			t.Errorf("expected Loading, got %s", m.State())
		}
		if m.LoadErr() != loadErr {
			t.Errorf("expected load error to be kept, got %v", m.LoadErr())
		}
		assertOnePane(t, m)
	})

	t.Run("is terminal", func(t *testing.T) {
		if err := m.Loaded(tu.SampleSheets()); !errors.Is(err, shared.ErrInvalidTransition) {
			t.Errorf("expected ErrInvalidTransition, got %v", err)
		}
		if _, err := m.Select("a"); !errors.Is(err, shared.ErrNotLoaded) {
			t.Errorf("expected ErrNotLoaded, got %v", err)
		}
		if err := m.Restore(&Entry{View: EntryList}); !errors.Is(err, shared.ErrNotLoaded) {
			t.Errorf("expected ErrNotLoaded, got %v", err)
		}
		if m.Panes() != (Panes{Loading: true}) {
			t.Errorf("expected only Loading visible, got %+v", m.Panes())
		}
	})

	t.Run("is logged", func(t *testing.T) {
		if !strings.Contains(buf.String(), "404") {
			t.Errorf("expected failure to be logged, got %q", buf.String())
		}
	})
}

func TestMachineRestore(t *testing.T) {
	tc := []struct {
		name  string
		from  string // sheet id to open first, "" stays on List
		entry *Entry
		want  State
	}{
		{name: "nil entry defaults to list", from: "a", entry: nil, want: State{Kind: List}},
		{name: "list entry", from: "a", entry: &Entry{View: EntryList}, want: State{Kind: List}},
		{name: "detail entry from list", entry: &Entry{View: EntryDetail, SheetID: "c"}, want: State{Kind: Detail, SheetID: "c"}},
		{name: "detail entry from detail", from: "a", entry: &Entry{View: EntryDetail, SheetID: "b"}, want: State{Kind: Detail, SheetID: "b"}},
		{name: "unknown id falls back to list", from: "a", entry: &Entry{View: EntryDetail, SheetID: "gone"}, want: State{Kind: List}},
		{name: "detail entry without id", entry: &Entry{View: EntryDetail}, want: State{Kind: List}},
		{name: "unrecognised view", from: "a", entry: &Entry{View: "settings"}, want: State{Kind: List}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newLoaded(t, tu.SampleSheets())
			if tt.from != "" {
				if _, err := m.Select(tt.from); err != nil {
					t.Fatalf("setup select failed: %v", err)
				}
			}

			if err := m.Restore(tt.entry); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.State() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, m.State())
			}
			assertOnePane(t, m)
		})
	}

	t.Run("replay matches direct navigation", func(t *testing.T) {
		direct, _ := newLoaded(t, tu.SampleSheets())
		direct.Select("c")
		want, _ := direct.Current()

		replayed, _ := newLoaded(t, tu.SampleSheets())
		replayed.Restore(&Entry{View: EntryDetail, SheetID: "c"})
		got, ok := replayed.Current()

		if !ok || got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})
}

func TestEmptyCollection(t *testing.T) {
	m, _ := newLoaded(t, []models.SheetRecord{})

	if m.State().Kind != List {
		t.Errorf("expected List, got %s", m.State())
	}
	if _, err := m.Select("a"); !errors.Is(err, shared.ErrUnknownSheetID) {
		t.Errorf("expected ErrUnknownSheetID, got %v", err)
	}
}

func TestStateStrings(t *testing.T) {
	if got := (State{Kind: Detail, SheetID: "x"}).String(); got != "detail(x)" {
		t.Errorf("unexpected %q", got)
	}
	if got := (State{Kind: List}).String(); got != "list" {
		t.Errorf("unexpected %q", got)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("unexpected %q", got)
	}
}
