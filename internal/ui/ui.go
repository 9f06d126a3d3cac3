package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/wis/internal/history"
	"github.com/desertthunder/wis/internal/services"
	"github.com/desertthunder/wis/internal/shared"
	"github.com/desertthunder/wis/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	source  services.Source
	machine *view.Machine
	stack   *history.Stack
	history *history.Adapter
	logger  *log.Logger
	open    func(string) error
	width   int
	height  int
	list    list.Model
	spinner spinner.Model
	status  string
	help    help.Model
	keys    keyMap
}

// Option customizes a [Model].
type Option func(*Model)

// WithOpener replaces the function used to open links, [shared.OpenBrowser] by default.
func WithOpener(open func(string) error) Option {
	return func(m *Model) { m.open = open }
}

// NewModel creates a new TUI model reading from source.
func NewModel(ctx context.Context, source services.Source, logger *log.Logger, opts ...Option) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	machine := view.NewMachine(logger)
	stack := history.NewStack("/")

	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth-4, defaultHeight-6)
	l.Title = "Work Instruction Sheets"
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	m := &Model{
		ctx:     ctx,
		source:  source,
		machine: machine,
		stack:   stack,
		history: history.NewAdapter(machine, stack, "/"),
		logger:  logger,
		open:    shared.OpenBrowser,
		width:   defaultWidth,
		height:  defaultHeight,
		list:    l,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    newKeyMap(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the active view.
func (m *Model) State() view.State { return m.machine.State() }

// Init starts the spinner and the single fetch of the collection.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSheets())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case spinner.TickMsg:
		if !m.machine.Panes().Loading || m.machine.LoadErr() != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case Msg:
		return m.handleMsg(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.machine.State().Kind {
		case view.List:
			return m.handleListKeys(msg)
		case view.Detail:
			return m.handleDetailKeys(msg)
		}
		return m, nil
	}

	if m.machine.State().Kind == view.List {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the pane for the current view state.
func (m *Model) View() string {
	switch m.machine.State().Kind {
	case view.List:
		return m.renderList()
	case view.Detail:
		return m.renderDetail()
	default:
		return m.renderLoading()
	}
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgSheetsLoaded:
		data := msg.data.(sheetsLoaded)
		if data.err != nil {
			m.machine.Failed(data.err)
			return m, nil
		}
		if err := m.machine.Loaded(data.sheets); err != nil {
			m.logger.Warn("ignoring collection", "err", err)
			return m, nil
		}
		return m, m.list.SetItems(sheetItems(m.machine.Sheets()))

	case MsgLinkOpened:
		data := msg.data.(linkOpened)
		if data.err != nil {
			m.logger.Warn("failed to open link", "link", data.link, "err", data.err)
			m.status = styles.warn.Render(fmt.Sprintf("could not open %s", plain(data.link)))
		} else {
			m.status = styles.ok.Render(fmt.Sprintf("opened %s", plain(data.link)))
		}
	}
	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.list.SelectedItem().(sheetItem); ok {
			m.navigate(m.history.Select(item.sheet.ID))
		}
		return m, nil
	case key.Matches(msg, m.keys.prev):
		return m, m.step(m.history.StepBack)
	case key.Matches(msg, m.keys.next):
		return m, m.step(m.history.StepForward)
	case key.Matches(msg, m.keys.back):
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.navigate(m.history.Back())
	case key.Matches(msg, m.keys.prev):
		return m, m.step(m.history.StepBack)
	case key.Matches(msg, m.keys.next):
		return m, m.step(m.history.StepForward)
	case key.Matches(msg, m.keys.pdf):
		if sheet, ok := m.machine.Current(); ok {
			return m, m.openLink(sheet.PDFLink)
		}
	case key.Matches(msg, m.keys.video):
		if sheet, ok := m.machine.Current(); ok {
			return m, m.openLink(sheet.VideoLink)
		}
	}
	return m, nil
}

// navigate clears the status line after a transition. Unknown ids were already logged by the machine.
func (m *Model) navigate(err error) {
	if err != nil {
		m.logger.Debug("navigation ignored", "err", err)
		return
	}
	m.status = ""
	m.syncCursor()
}

func (m *Model) step(move func() (bool, error)) tea.Cmd {
	moved, err := move()
	if moved {
		m.navigate(err)
	}
	return nil
}

// syncCursor keeps the list cursor on the sheet the detail view showed last.
func (m *Model) syncCursor() {
	sheet, ok := m.machine.Current()
	if !ok {
		return
	}
	for i, s := range m.machine.Sheets() {
		if s.ID == sheet.ID {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) loadSheets() tea.Cmd {
	return func() tea.Msg {
		sheets, err := m.source.Load(m.ctx)
		return sheetsLoadedMsg(sheets, err)
	}
}

func (m *Model) openLink(link string) tea.Cmd {
	target := m.source.Resolve(link)
	open := m.open
	return func() tea.Msg {
		return linkOpenedMsg(target, open(target))
	}
}

func (m *Model) renderLoading() string {
	if err := m.machine.LoadErr(); err != nil {
		var b strings.Builder
		b.WriteString(styles.err.Render("⚠ Error loading data"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Please check if %s file exists.\n", plain(m.source.Location())))
		b.WriteString(styles.help.Render(fmt.Sprintf("Error details: %s", plain(err.Error()))))
		b.WriteString("\n\n")
		b.WriteString(m.helpView())
		return b.String()
	}

	return fmt.Sprintf("%s Loading work instruction sheets…\n\n%s", m.spinner.View(), m.helpView())
}

func (m *Model) renderList() string {
	helpView := m.helpView()

	if len(m.list.Items()) == 0 {
		title := styles.title.Render("Work Instruction Sheets")
		return fmt.Sprintf("%s\n%s\n\n%s", title, styles.help.Render("No work instruction sheets available."), helpView)
	}
	return fmt.Sprintf("%s\n\n%s", m.list.View(), helpView)
}

func (m *Model) renderDetail() string {
	sheet, ok := m.machine.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(plain(sheet.SheetName)))
	b.WriteString("\n")
	b.WriteString(styles.body.Render(plain(sheet.Description)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", styles.label.Render("PDF:  "), plain(sheet.PDFLink)))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.label.Render("Video:"), plain(sheet.VideoLink)))
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + m.helpView())
	return b.String()
}

// helpView lists the keys of the active pane; "?" switches between the short and full listing.
func (m *Model) helpView() string {
	return m.help.View(m.keys.forView(m.machine.State().Kind))
}
