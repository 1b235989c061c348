// Package render produces the binary document formats scattered through
// a populated user tree: PDFs, spreadsheets, slide decks, and photo
// images. Callers describe content structurally; each writer owns one
// output format.
package render

// Section is one heading-plus-body block of a PDF document.
type Section struct {
	Heading string
	Body    string
}

// Sheet is one worksheet of a workbook, rows in display order.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// Slide is one slide of a deck: a title and its bullet lines.
type Slide struct {
	Title   string
	Bullets []string
}
