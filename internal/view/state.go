package view

import "fmt"

// Kind identifies one of the three mutually exclusive views.
type Kind int

const (
	Loading Kind = iota
	List
	Detail
)

func (k Kind) String() string {
	switch k {
	case Loading:
		return "loading"
	case List:
		return "list"
	case Detail:
		return "detail"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is the active view. SheetID is set only for [Detail].
type State struct {
	Kind    Kind
	SheetID string
}

func (s State) String() string {
	if s.Kind == Detail {
		return fmt.Sprintf("detail(%s)", s.SheetID)
	}
	return s.Kind.String()
}

// Panes reports which container is visible. Exactly one field is true.
type Panes struct {
	Loading bool
	List    bool
	Detail  bool
}

// PanesFor maps a state onto its visibility toggles.
func PanesFor(s State) Panes {
	switch s.Kind {
	case List:
		return Panes{List: true}
	case Detail:
		return Panes{Detail: true}
	default:
		return Panes{Loading: true}
	}
}

// Entry is the state carried by a navigation history entry.
type Entry struct {
	View    string `json:"view"`
	SheetID string `json:"sheetId,omitempty"`
}

const (
	EntryList   = "list"
	EntryDetail = "detail"
)

// ListEntry is the history entry for the list view.
func ListEntry() Entry { return Entry{View: EntryList} }

// DetailEntry is the history entry for the detail view of id.
func DetailEntry(id string) Entry { return Entry{View: EntryDetail, SheetID: id} }

// EventKind enumerates the machine's output events.
type EventKind int

const (
	NavigationRecorded EventKind = iota
)

// Event is emitted by user-driven transitions for the history adapter to record.
type Event struct {
	Kind  EventKind
	Entry Entry
}

func recorded(e Entry) []Event {
	return []Event{{Kind: NavigationRecorded, Entry: e}}
}
