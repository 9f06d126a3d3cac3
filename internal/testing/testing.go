// package testing contains shared testing utilities
package testing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/wis/internal/models"
)

// MockSource is a test double for [services.Source]
type MockSource struct {
	Sheets []models.SheetRecord
	Err    error
	Calls  int
}

func (m *MockSource) Load(ctx context.Context) ([]models.SheetRecord, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Sheets, nil
}

func (m *MockSource) Resolve(link string) string { return link }
func (m *MockSource) Location() string           { return "mock.json" }

// TorqueSpec is the single-sheet collection used across tests.
func TorqueSpec() []models.SheetRecord {
	return []models.SheetRecord{
		{ID: "a", SheetName: "Torque Spec", Description: "Tighten to 40 Nm", PDFLink: "a.pdf", VideoLink: "a.mp4"},
	}
}

// SampleSheets returns a small collection with distinct fields per record.
func SampleSheets() []models.SheetRecord {
	return []models.SheetRecord{
		{ID: "a", SheetName: "Torque Spec", Description: "Tighten to 40 Nm", PDFLink: "a.pdf", VideoLink: "a.mp4"},
		{ID: "b", SheetName: "Bolt Pattern", Description: "Star sequence", PDFLink: "b.pdf", VideoLink: "b.mp4"},
		{ID: "c", SheetName: "Seal Install", Description: "Lubricate first", PDFLink: "c.pdf", VideoLink: "c.mp4"},
	}
}

// WriteSheets marshals sheets into a data.json file under a temp dir and returns its path.
func WriteSheets(t *testing.T, sheets []models.SheetRecord) string {
	t.Helper()
	data, err := json.Marshal(sheets)
	if err != nil {
		t.Fatalf("Failed to marshal sheets: %v", err)
	}
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
