// Package web serves the viewer as server-rendered HTML.
//
// # Architecture
//
// The collection is fetched once by [App.Load] before the server starts accepting requests. Each request then
// builds a fresh [view.Machine] from the immutable collection, applies the transition its route asks for and
// paints the result with [render.Renderer]. There is no shared mutable state between requests.
//
// Routes (relative to the base path)
//
//	GET  /              → List view (or the error panel if the load failed)
//	GET  /sheets/{id}   → Detail view; unknown ids fall back to the List view
//	GET  /data.json     → The raw collection
//	GET  /healthz       → Load status as JSON
//
// Requests carrying an HX-Request header receive only the active container. The served page does not load htmx
// itself; the fragments are meant for embedding the viewer in another page that does.
//
// # History
//
// Every view has its own address, so the browser's back and forward buttons replay views natively; the
// server only has to render whatever address it is asked for.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/render"
	"github.com/desertthunder/wis/internal/server"
	"github.com/desertthunder/wis/internal/services"
	"github.com/desertthunder/wis/internal/shared"
	"github.com/desertthunder/wis/internal/view"
)

var _ server.Handler = (*App)(nil)

// App holds the loaded collection and renders views on request.
type App struct {
	source   services.Source
	renderer *render.Renderer
	logger   *log.Logger
	basePath string
	mux      *http.ServeMux
	sheets   []models.SheetRecord
	loadErr  error
	loaded   bool
}

// NewApp creates an App serving under basePath ("/" by default).
func NewApp(source services.Source, logger *log.Logger, basePath string) (*App, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}

	renderer, err := render.New(basePath)
	if err != nil {
		return nil, err
	}

	a := &App{
		source:   source,
		renderer: renderer,
		logger:   logger,
		basePath: basePath,
		mux:      http.NewServeMux(),
	}
	routes := a.Routes()
	for i, fn := range []http.HandlerFunc{a.handleList, a.handleDetail, a.handleData, a.handleHealth} {
		a.mux.HandleFunc(routes[i], fn)
	}
	return a, nil
}

// Load performs the single fetch. A failure is kept and served as the error panel; it is also returned so
// callers can log it.
func (a *App) Load(ctx context.Context) error {
	if a.loaded {
		return a.loadErr
	}
	a.loaded = true

	sheets, err := a.source.Load(ctx)
	if err != nil {
		a.loadErr = err
		a.logger.Error("error loading work instruction sheets", "source", a.source.Location(), "err", err)
		return err
	}

	a.sheets = sheets
	a.logger.Info("loaded work instruction sheets", "source", a.source.Location(), "count", len(sheets))
	return nil
}

// Routes returns the patterns [App.ServeHTTP] answers.
func (a *App) Routes() []string {
	return []string{
		http.MethodGet + " " + a.basePath + "{$}",
		http.MethodGet + " " + a.basePath + "sheets/{id}",
		http.MethodGet + " " + a.basePath + "data.json",
		http.MethodGet + " " + a.basePath + "healthz",
	}
}

// ServeHTTP dispatches to the view for the request path.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Register adds the viewer's routes to r.
func (a *App) Register(r server.Router) {
	r.Handler(a)
}

// Handler returns a router with the viewer's routes and the given middleware.
func (a *App) Handler(middleware ...server.Middleware) http.Handler {
	r := server.NewBasicRouter()
	r.Use(middleware...)
	a.Register(r)
	return r
}

// machine builds a machine in the state every request starts from: List, or Loading with the error panel.
func (a *App) machine(r *http.Request) *view.Machine {
	m := view.NewMachine(shared.WithLogger(a.logger, "request", server.RequestID(r.Context())))
	switch {
	case a.loadErr != nil:
		m.Failed(a.loadErr)
	case a.loaded:
		m.Loaded(a.sheets)
	}
	return m
}

func (a *App) handleList(w http.ResponseWriter, r *http.Request) {
	a.paint(w, r, a.machine(r))
}

func (a *App) handleDetail(w http.ResponseWriter, r *http.Request) {
	m := a.machine(r)
	if _, err := m.Select(r.PathValue("id")); err != nil && !errors.Is(err, shared.ErrUnknownSheetID) {
		a.logger.Debug("detail unavailable", "err", err)
	}
	a.paint(w, r, m)
}

func (a *App) handleData(w http.ResponseWriter, r *http.Request) {
	if a.loadErr != nil || !a.loaded {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": a.errorText()})
		return
	}
	sheets := a.sheets
	if sheets == nil {
		sheets = []models.SheetRecord{}
	}
	writeJSON(w, http.StatusOK, sheets)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.loadErr != nil || !a.loaded {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable", "error": a.errorText()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sheets": len(a.sheets)})
}

func (a *App) paint(w http.ResponseWriter, r *http.Request, m *view.Machine) {
	snap := render.Snap(m, a.source.Location())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "HX-Request")
	if m.LoadErr() != nil || !a.loaded {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	var err error
	if r.Header.Get("HX-Request") == "true" {
		err = a.renderer.Fragment(w, snap)
	} else {
		err = a.renderer.Page(w, snap)
	}
	if err != nil {
		a.logger.Error("render failed", "state", m.State(), "err", err)
	}
}

func (a *App) errorText() string {
	if a.loadErr != nil {
		return a.loadErr.Error()
	}
	return shared.ErrNotLoaded.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
