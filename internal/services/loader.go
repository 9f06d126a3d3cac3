package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/shared"
)

var _ Source = (*Loader)(nil)

// Loader reads the sheet collection from a URL or a local file.
type Loader struct {
	location   string
	httpClient *http.Client
}

// NewLoader creates a new Loader for location.
//
// The location defaults to "data.json" in the working directory and the client to [http.DefaultClient].
func NewLoader(location string, client *http.Client) *Loader {
	if strings.TrimSpace(location) == "" {
		location = "data.json"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Loader{
		location:   location,
		httpClient: client,
	}
}

// Location returns the configured source location.
func (l *Loader) Location() string {
	return l.location
}

// Load fetches and decodes the collection.
func (l *Loader) Load(ctx context.Context) ([]models.SheetRecord, error) {
	var (
		body []byte
		err  error
	)

	if l.isRemote() {
		body, err = l.fetch(ctx)
	} else {
		body, err = l.read()
	}
	if err != nil {
		return nil, err
	}

	return Decode(body)
}

// Decode parses a JSON array of sheet objects, preserving order. Fields are not validated.
func Decode(body []byte) ([]models.SheetRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &LoadError{Kind: ParseError, Message: "expected a JSON array of sheets"}
	}

	var sheets []models.SheetRecord
	if err := json.Unmarshal(trimmed, &sheets); err != nil {
		return nil, &LoadError{Kind: ParseError, Message: err.Error()}
	}

	if sheets == nil {
		sheets = []models.SheetRecord{}
	}
	return sheets, nil
}

// Resolve turns link into an absolute URL relative to the source location.
//
// Links that are already absolute are returned untouched, as are links that fail to parse.
func (l *Loader) Resolve(link string) string {
	ref, err := url.Parse(link)
	if err != nil || ref.IsAbs() || link == "" {
		return link
	}

	base, err := l.baseURL()
	if err != nil {
		return link
	}
	return base.ResolveReference(ref).String()
}

func (l *Loader) isRemote() bool {
	lower := strings.ToLower(l.location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func (l *Loader) path() string {
	if strings.HasPrefix(strings.ToLower(l.location), "file://") {
		if u, err := url.Parse(l.location); err == nil {
			return u.Path
		}
	}
	return l.location
}

func (l *Loader) baseURL() (*url.URL, error) {
	if l.isRemote() {
		return url.Parse(l.location)
	}

	abs, err := filepath.Abs(l.path())
	if err != nil {
		return nil, err
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrAPIRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Kind: HTTPStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}

	return body, nil
}

func (l *Loader) read() ([]byte, error) {
	body, err := os.ReadFile(l.path())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return body, nil
}
