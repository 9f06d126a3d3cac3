// Package render turns a viewer snapshot into HTML.
//
// Templates are [html/template] so every sheet field is escaped for the context it lands in: text nodes,
// attribute values and URLs. Links with unsafe schemes such as javascript: are replaced with a harmless
// placeholder by the template engine.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/view"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Snapshot is everything the page needs to paint one state.
type Snapshot struct {
	State      view.State
	Panes      view.Panes
	Sheets     []models.SheetRecord
	Sheet      models.SheetRecord
	Generation int
	LoadErr    error
	Source     string
}

// Snap captures the machine's current state.
func Snap(m *view.Machine, source string) Snapshot {
	s := Snapshot{
		State:      m.State(),
		Panes:      m.Panes(),
		Sheets:     m.Sheets(),
		Generation: m.Generation(),
		LoadErr:    m.LoadErr(),
		Source:     source,
	}
	if sheet, ok := m.Current(); ok {
		s.Sheet = sheet
	}
	return s
}

// Renderer paints snapshots. It holds no view state of its own.
type Renderer struct {
	tmpl     *template.Template
	basePath string
}

// New parses the embedded templates. basePath is where the list view lives; detail views are served
// under basePath + "sheets/{id}".
func New(basePath string) (*Renderer, error) {
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}

	r := &Renderer{basePath: basePath}
	tmpl, err := template.New("wis").Funcs(template.FuncMap{
		"visibility": visibility,
		"detailHref": r.DetailPath,
		"listHref":   func() string { return r.basePath },
	}).ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Must is like [New] but panics on error. The templates are embedded, so failure is a build defect.
func Must(basePath string) *Renderer {
	r, err := New(basePath)
	if err != nil {
		panic(err)
	}
	return r
}

// DetailPath is the address of the detail view for id.
func (r *Renderer) DetailPath(id string) string {
	return r.basePath + "sheets/" + url.PathEscape(id)
}

// ListPath is the address of the list view.
func (r *Renderer) ListPath() string { return r.basePath }

// Page writes the full document for s.
func (r *Renderer) Page(w io.Writer, s Snapshot) error {
	return r.execute(w, "page", s)
}

// Fragment writes only the container for the active view.
func (r *Renderer) Fragment(w io.Writer, s Snapshot) error {
	name := "loading"
	switch {
	case s.Panes.List:
		name = "list"
	case s.Panes.Detail:
		name = "detail"
	}
	return r.execute(w, name, s)
}

func (r *Renderer) execute(w io.Writer, name string, s Snapshot) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, s); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func visibility(visible bool) string {
	if visible {
		return "block"
	}
	return "hidden"
}
