package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component by delegating to the wrapped node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component to satisfy the gomponents.Node interface.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements gomponents.Node. gomponents does not pass a context, so
// the component is rendered with context.Background().
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
