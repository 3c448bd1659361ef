package views

import (
	"peoplepicker/internal/domain"
)

// HeaderRenderer renders the application title and current selection
type HeaderRenderer struct {
	styles *Styles
}

// NewHeaderRenderer creates a new header renderer
func NewHeaderRenderer(styles *Styles) *HeaderRenderer {
	return &HeaderRenderer{styles: styles}
}

// Render returns the title line followed by the selection line
func (r *HeaderRenderer) Render(selected *domain.Person) string {
	title := r.styles.Title.Render("peoplepicker")
	if selected == nil {
		return title + "\n" + r.styles.Dim.Render("No selected person")
	}
	return title + "\n" + r.styles.Selected.Render(selected.Lifespan())
}
