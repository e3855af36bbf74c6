// Package program runs the unidirectional update loop between a
// widget's rendered tree and a host's state.
//
// A [Program] owns the host model, an update function, and a view
// function. Dispatch applies messages strictly in arrival order under a
// lock, persists the returned model, and re-renders, so a runtime that
// delivers events concurrently still satisfies the widget's
// serialization requirement. Panics escaping host callbacks are
// recovered and reported through pkg/errors.
package program

import (
	"sync"

	widgeterrors "github.com/go-widgets/dropdown/pkg/errors"
	"github.com/go-widgets/dropdown/pkg/html"
)

// Program drives one widget host. Model is the host's state; M is the
// message type of the rendered tree.
type Program[Model any, M any] struct {
	mu       sync.Mutex
	model    Model
	update   func(Model, M) Model
	view     func(Model) html.Node[M]
	onRender func(html.Node[M])
}

// New constructs a program with the initial model. update must return
// the next model for a message; view must render a model. Both are
// called with the lock held and must not call back into the program.
func New[Model any, M any](model Model, update func(Model, M) Model, view func(Model) html.Node[M]) *Program[Model, M] {
	return &Program[Model, M]{
		model:  model,
		update: update,
		view:   view,
	}
}

// OnRender registers a sink invoked with the fresh tree after every
// dispatch. Replaces any previous sink.
func (p *Program[Model, M]) OnRender(fn func(html.Node[M])) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onRender = fn
}

// Model returns the current model.
func (p *Program[Model, M]) Model() Model {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.model
}

// Render returns the view of the current model.
func (p *Program[Model, M]) Render() html.Node[M] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view(p.model)
}

// Dispatch applies msg to the model and pushes the re-rendered tree to
// the render sink. Calls are serialized; each completes, and its model
// is persisted, before the next is applied.
func (p *Program[Model, M]) Dispatch(msg M) {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer widgeterrors.Recover("program.Dispatch")

	p.model = p.update(p.model, msg)
	if p.onRender != nil {
		p.onRender(p.view(p.model))
	}
}
