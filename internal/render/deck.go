package render

import (
	"fmt"
	"strings"

	"github.com/runnerr0/patina/internal/layout"
)

// WriteDeck renders a slide deck as a markdown outline at path. Office
// presentation containers have no dependable writer library, so decks
// are stored in the portable text form many teams keep alongside the
// binary export anyway.
func WriteDeck(path, title string, slides []Slide) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	for _, slide := range slides {
		fmt.Fprintf(&b, "## %s\n\n", slide.Title)
		for _, bullet := range slide.Bullets {
			fmt.Fprintf(&b, "- %s\n", bullet)
		}
		b.WriteString("\n")
	}

	return layout.WriteString(path, b.String())
}
