package history

import "github.com/desertthunder/wis/internal/view"

var _ Platform = (*Stack)(nil)

type record struct {
	entry    *view.Entry
	location string
}

// Stack is an in-memory [Platform] that behaves like a browser session history.
//
// It starts with one stateless entry for the initial page. Pushing drops any forward entries.
type Stack struct {
	records []record
	cursor  int
}

// NewStack creates a history holding the initial entry at basePath.
func NewStack(basePath string) *Stack {
	if basePath == "" {
		basePath = "/"
	}
	return &Stack{records: []record{{location: basePath}}}
}

func (s *Stack) Push(entry view.Entry, location string) {
	e := entry
	s.records = append(s.records[:s.cursor+1], record{entry: &e, location: location})
	s.cursor = len(s.records) - 1
}

func (s *Stack) Back() (*view.Entry, bool) {
	if s.cursor == 0 {
		return nil, false
	}
	s.cursor--
	return s.current(), true
}

func (s *Stack) Forward() (*view.Entry, bool) {
	if s.cursor >= len(s.records)-1 {
		return nil, false
	}
	s.cursor++
	return s.current(), true
}

// Location returns the address of the current entry.
func (s *Stack) Location() string {
	return s.records[s.cursor].location
}

// Len returns the number of entries, including the initial one.
func (s *Stack) Len() int { return len(s.records) }

// CanBack reports whether [Stack.Back] would move.
func (s *Stack) CanBack() bool { return s.cursor > 0 }

// CanForward reports whether [Stack.Forward] would move.
func (s *Stack) CanForward() bool { return s.cursor < len(s.records)-1 }

func (s *Stack) current() *view.Entry {
	e := s.records[s.cursor].entry
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}
