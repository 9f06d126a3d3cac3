package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wis/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSheetsLoaded MsgKind = iota
	MsgLinkOpened
)

type sheetsLoaded struct {
	sheets []models.SheetRecord
	err    error
}

type linkOpened struct {
	link string
	err  error
}

// sheetsLoadedMsg is the constructor for [MsgSheetsLoaded]
func sheetsLoadedMsg(sheets []models.SheetRecord, err error) Msg {
	return Msg{kind: MsgSheetsLoaded, data: sheetsLoaded{sheets, err}}
}

// linkOpenedMsg is the constructor for [MsgLinkOpened]
func linkOpenedMsg(link string, err error) Msg {
	return Msg{kind: MsgLinkOpened, data: linkOpened{link, err}}
}
