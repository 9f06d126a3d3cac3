// package formatter provides functions to export the sheet collection to various formats (CSV, JSON, Markdown, YAML, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/shared"
	"gopkg.in/yaml.v3"
)

// Format names an export format.
type Format string

const (
	Text     Format = "text"
	JSON     Format = "json"
	CSV      Format = "csv"
	Markdown Format = "markdown"
	YAML     Format = "yaml"
)

// Formats lists every supported [Format].
var Formats = []Format{Text, JSON, CSV, Markdown, YAML}

// ParseFormat resolves a format name, accepting "md" and "txt" as shorthands.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "markdown", "md":
		return Markdown, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, name)
	}
}

// Export renders sheets in the given format.
func Export(format Format, sheets []models.SheetRecord) ([]byte, error) {
	switch format {
	case Text:
		return ExportToText(sheets)
	case JSON:
		return ExportToJSON(sheets, true)
	case CSV:
		return ExportToCSV(sheets)
	case Markdown:
		return ExportToMarkdown(sheets)
	case YAML:
		return ExportToYAML(sheets)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToCSV converts sheets to CSV format with columns: ID, Name, Description, PDF, Video
func ExportToCSV(sheets []models.SheetRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Description", "PDF", "Video"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, sheet := range sheets {
		record := []string{sheet.ID, sheet.SheetName, sheet.Description, sheet.PDFLink, sheet.VideoLink}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts sheets back to the source document shape
func ExportToJSON(sheets []models.SheetRecord, pretty bool) ([]byte, error) {
	if sheets == nil {
		sheets = []models.SheetRecord{}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(sheets, "", "  ")
	} else {
		data, err = json.Marshal(sheets)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportToYAML converts sheets to a YAML sequence using the source field names
func ExportToYAML(sheets []models.SheetRecord) ([]byte, error) {
	if sheets == nil {
		sheets = []models.SheetRecord{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(sheets); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportToMarkdown converts sheets to a Markdown document with one section per sheet
func ExportToMarkdown(sheets []models.SheetRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Work Instruction Sheets\n\n")
	if len(sheets) == 0 {
		buf.WriteString("No work instruction sheets available.\n")
		return buf.Bytes(), nil
	}

	for _, sheet := range sheets {
		buf.WriteString(fmt.Sprintf("## %s\n\n", oneLine(sheet.SheetName)))
		if sheet.Description != "" {
			buf.WriteString(sheet.Description + "\n\n")
		}
		buf.WriteString(fmt.Sprintf("- **ID**: `%s`\n", sheet.ID))
		if sheet.PDFLink != "" {
			buf.WriteString(fmt.Sprintf("- **PDF**: <%s>\n", sheet.PDFLink))
		}
		if sheet.VideoLink != "" {
			buf.WriteString(fmt.Sprintf("- **Video**: <%s>\n", sheet.VideoLink))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts sheets to a numbered plain text listing
func ExportToText(sheets []models.SheetRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Sheets: %d\n\n", len(sheets)))
	if len(sheets) == 0 {
		buf.WriteString("No work instruction sheets available.\n")
		return buf.Bytes(), nil
	}

	for i, sheet := range sheets {
		buf.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, oneLine(sheet.SheetName), sheet.ID))
		if sheet.Description != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", oneLine(sheet.Description)))
		}
	}

	return buf.Bytes(), nil
}

// SheetToText renders a single sheet the way the detail view lays it out
func SheetToText(sheet models.SheetRecord) []byte {
	var buf bytes.Buffer
	buf.WriteString(sheet.SheetName + "\n")
	buf.WriteString(strings.Repeat("─", min(len([]rune(sheet.SheetName)), 60)) + "\n")
	if sheet.Description != "" {
		buf.WriteString(sheet.Description + "\n")
	}
	buf.WriteString(fmt.Sprintf("\nPDF:   %s\nVideo: %s\n", sheet.PDFLink, sheet.VideoLink))
	return buf.Bytes()
}

// WriteExport writes sheets in the given format to path.
func WriteExport(format Format, sheets []models.SheetRecord, path string) error {
	data, err := Export(format, sheets)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", format, err)
	}
	return nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
