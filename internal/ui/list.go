package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/wis/internal/models"
)

var _ list.Item = sheetItem{}

// sheetItem wraps [models.SheetRecord] to implement [list.Item].
type sheetItem struct {
	sheet models.SheetRecord
}

func (i sheetItem) FilterValue() string { return plain(i.sheet.SheetName) }
func (i sheetItem) Title() string       { return plain(i.sheet.SheetName) }
func (i sheetItem) Description() string { return plain(oneLine(i.sheet.Description)) }

func sheetItems(sheets []models.SheetRecord) []list.Item {
	items := make([]list.Item, len(sheets))
	for i, s := range sheets {
		items[i] = sheetItem{sheet: s}
	}
	return items
}

// plain drops control characters so sheet text cannot drive the terminal. Newlines and tabs survive.
func plain(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
