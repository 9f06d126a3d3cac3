package models

// SheetRecord is a single work instruction sheet.
type SheetRecord struct {
	ID          string `json:"id" yaml:"id"`
	SheetName   string `json:"sheetName" yaml:"sheetName"`
	Description string `json:"description" yaml:"description"`
	PDFLink     string `json:"pdfLink" yaml:"pdfLink"`
	VideoLink   string `json:"videoLink" yaml:"videoLink"`
}

// FindSheet returns the first record in sheets with the given id.
func FindSheet(sheets []SheetRecord, id string) (SheetRecord, bool) {
	for _, s := range sheets {
		if s.ID == id {
			return s, true
		}
	}
	return SheetRecord{}, false
}
