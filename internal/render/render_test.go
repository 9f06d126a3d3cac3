package render

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/shared"
	tu "github.com/desertthunder/wis/internal/testing"
	"github.com/desertthunder/wis/internal/view"
)

func loaded(t *testing.T, sheets []models.SheetRecord) *view.Machine {
	t.Helper()
	m := view.NewMachine(shared.NewLogger(io.Discard))
	if err := m.Loaded(sheets); err != nil {
		t.Fatalf("Loaded failed: %v", err)
	}
	return m
}

func page(t *testing.T, r *Renderer, m *view.Machine) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Page(&buf, Snap(m, "data.json")); err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	return buf.String()
}

func assertVisible(t *testing.T, html, id string) {
	t.Helper()
	if got := strings.Count(html, `class="view block"`); got != 1 {
		t.Errorf("expected exactly one visible container, got %d", got)
	}
	if got := strings.Count(html, `class="view hidden"`); got != 2 {
		t.Errorf("expected two hidden containers, got %d", got)
	}
	if !strings.Contains(html, `id="`+id+`" class="view block"`) {
		t.Errorf("expected #%s to be the visible container", id)
	}
}

func TestRenderer(t *testing.T) {
	r := Must("/")

	t.Run("Loading", func(t *testing.T) {
		html := page(t, r, view.NewMachine(shared.NewLogger(io.Discard)))
		assertVisible(t, html, "loading")
		if !strings.Contains(html, "Loading work instruction sheets") {
			t.Error("expected loading indicator")
		}
	})

	t.Run("List preserves order and renders one card per sheet", func(t *testing.T) {
		html := page(t, r, loaded(t, tu.SampleSheets()))
		assertVisible(t, html, "sheet-list")

		if got := strings.Count(html, `class="card"`); got != 3 {
			t.Errorf("expected 3 cards, got %d", got)
		}
		a := strings.Index(html, "Torque Spec")
		b := strings.Index(html, "Bolt Pattern")
		c := strings.Index(html, "Seal Install")
		if !(a < b && b < c) || a < 0 {
			t.Errorf("expected cards in collection order, got positions %d %d %d", a, b, c)
		}
		if !strings.Contains(html, `data-sheet-id="b"`) || !strings.Contains(html, `href="/sheets/b"`) {
			t.Error("expected card action to target the sheet id")
		}
		if strings.Contains(html, "No work instruction sheets available.") {
			t.Error("did not expect placeholder")
		}
	})

	t.Run("Empty list renders one placeholder", func(t *testing.T) {
		html := page(t, r, loaded(t, []models.SheetRecord{}))
		assertVisible(t, html, "sheet-list")

		if got := strings.Count(html, "No work instruction sheets available."); got != 1 {
			t.Errorf("expected one placeholder, got %d", got)
		}
		if strings.Contains(html, `class="card"`) {
			t.Error("expected no cards")
		}
	})

	t.Run("Detail populates every field", func(t *testing.T) {
		m := loaded(t, tu.TorqueSpec())
		m.Select("a")
		html := page(t, r, m)
		assertVisible(t, html, "sheet-detail")

		for _, want := range []string{
			`<h2 id="detail-title">Torque Spec</h2>`,
			`<p id="detail-description" class="description">Tighten to 40 Nm</p>`,
			`id="pdf-link" class="action" href="a.pdf"`,
			`<source id="video-source" src="a.mp4">`,
			`data-generation="1"`,
			`href="/"`,
		} {
			if !strings.Contains(html, want) {
				t.Errorf("expected detail to contain %q", want)
			}
		}
	})

	t.Run("Detail generation changes on every entry", func(t *testing.T) {
		m := loaded(t, tu.TorqueSpec())
		m.Select("a")
		m.Back()
		m.Select("a")
		html := page(t, r, m)

		if !strings.Contains(html, `data-generation="2"`) {
			t.Error("expected a fresh video generation")
		}
	})

	t.Run("Load error panel", func(t *testing.T) {
		m := view.NewMachine(shared.NewLogger(io.Discard))
		m.Failed(errors.New(`HTTP error! status: 404 <b>"x"</b>`))
		html := page(t, r, m)
		assertVisible(t, html, "loading")

		for _, want := range []string{
			"Error loading data",
			"Please check if data.json file exists.",
			"Error details: HTTP error! status: 404 &lt;b&gt;&#34;x&#34;&lt;/b&gt;",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("expected error panel to contain %q", want)
			}
		}
		if strings.Contains(html, `class="card"`) || strings.Contains(html, `id="detail-title"`) {
			t.Error("expected no list or detail content")
		}
	})
}

func TestEscaping(t *testing.T) {
	r := Must("/")
	hostile := []models.SheetRecord{{
		ID:          `x" onclick="alert(1)`,
		SheetName:   `<script>alert('name')</script>`,
		Description: `<img src=x onerror=alert(1)>`,
		PDFLink:     `javascript:alert('pdf')`,
		VideoLink:   `javascript:alert('video')`,
	}}

	t.Run("list", func(t *testing.T) {
		html := page(t, r, loaded(t, hostile))

		if strings.Contains(html, "<script") {
			t.Error("sheet name was interpreted as markup")
		}
		if !strings.Contains(html, "&lt;script&gt;alert(&#39;name&#39;)&lt;/script&gt;") {
			t.Error("expected escaped sheet name")
		}
		if strings.Contains(html, "<img") {
			t.Error("description was interpreted as markup")
		}
		if strings.Contains(html, `onclick="alert(1)"`) {
			t.Error("id broke out of its attribute")
		}
	})

	t.Run("detail", func(t *testing.T) {
		m := loaded(t, hostile)
		if _, err := m.Select(hostile[0].ID); err != nil {
			t.Fatalf("Select failed: %v", err)
		}
		html := page(t, r, m)

		if strings.Count(html, "<script") != 1 || !strings.Contains(html, `<script id="escape-handler">`) || strings.Contains(html, "<img") {
			t.Error("detail fields were interpreted as markup")
		}
		if strings.Contains(html, "javascript:") {
			t.Error("unsafe link scheme reached the output")
		}
	})
}

func TestFragment(t *testing.T) {
	r := Must("/wis")
	m := loaded(t, tu.SampleSheets())

	var buf bytes.Buffer
	if err := r.Fragment(&buf, Snap(m, "data.json")); err != nil {
		t.Fatalf("Fragment failed: %v", err)
	}
	html := buf.String()

	if !strings.HasPrefix(html, `<section id="sheet-list"`) {
		t.Errorf("expected list fragment, got %q", html)
	}
	if strings.Contains(html, "<html") {
		t.Error("fragment should not contain the document shell")
	}
	if !strings.Contains(html, `href="/wis/sheets/a"`) {
		t.Error("expected detail links under the base path")
	}

	t.Run("write failure", func(t *testing.T) {
		if err := r.Fragment(&tu.FWriter{}, Snap(m, "data.json")); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestPaths(t *testing.T) {
	r := Must("")
	if r.ListPath() != "/" {
		t.Errorf("expected /, got %s", r.ListPath())
	}
	if got := r.DetailPath("a b/c"); got != "/sheets/a%20b%2Fc" {
		t.Errorf("expected escaped path, got %s", got)
	}
}

func TestEscapeHandler(t *testing.T) {
	r := Must("/wis")

	t.Run("detail navigates to the list on Escape", func(t *testing.T) {
		m := loaded(t, tu.SampleSheets())
		if _, err := m.Select("a"); err != nil {
			t.Fatalf("Select failed: %v", err)
		}
		html := page(t, r, m)

		start := strings.Index(html, `<script id="escape-handler">`)
		if start < 0 {
			t.Fatal("expected escape handler in detail view")
		}
		script := html[start:]
		script = script[:strings.Index(script, "</script>")]
		if !strings.Contains(script, `"Escape"`) || !strings.Contains(script, "wis") {
			t.Errorf("expected handler to go back to the list under /wis/, got %s", script)
		}
	})

	t.Run("list and loading views have none", func(t *testing.T) {
		if html := page(t, r, loaded(t, tu.SampleSheets())); strings.Contains(html, "escape-handler") {
			t.Error("expected no handler in the list view")
		}
		if html := page(t, r, view.NewMachine(shared.NewLogger(io.Discard))); strings.Contains(html, "escape-handler") {
			t.Error("expected no handler in the loading view")
		}
	})
}
