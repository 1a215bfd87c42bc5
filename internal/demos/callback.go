package demos

import (
	"fmt"

	"github.com/jask/statelab/internal/logger"
)

// Handler stands in for a function value passed as a prop. Two handlers
// are the same prop only if they share an identity.
type Handler struct {
	id uint64
	fn func()
}

func (h Handler) Call() {
	if h.fn != nil {
		h.fn()
	}
}

// MemoButton re-renders only when its handler identity or label changes.
type MemoButton struct {
	label   string
	handler uint64
	mounted bool
	renders int
	view    string
}

func (b *MemoButton) Renders() int    { return b.renders }
func (b *MemoButton) View() string    { return b.view }
func (b *MemoButton) Handler() uint64 { return b.handler }

func (b *MemoButton) render(label string, h Handler) {
	if b.mounted && b.label == label && b.handler == h.id {
		return
	}
	b.mounted = true
	b.label = label
	b.handler = h.id
	b.renders++
	b.view = fmt.Sprintf("[ %s ]", label)
	logger.Log.Debug().
		Str("component", "callback-demo").
		Str("label", label).
		Int("renders", b.renders).
		Msg("child rendered")
}

// CallbackDemo compares a child that receives a new handler on every parent
// render with one that receives a stable handler.
type CallbackDemo struct {
	Count  int
	Active bool

	nextID    uint64
	increment Handler
	toggle    Handler

	IncrementButton MemoButton
	ToggleButton    MemoButton
}

func NewCallbackDemo() *CallbackDemo {
	d := &CallbackDemo{}
	d.toggle = d.newHandler(func() { d.Active = !d.Active })
	d.render()
	return d
}

func (d *CallbackDemo) newHandler(fn func()) Handler {
	d.nextID++
	return Handler{id: d.nextID, fn: fn}
}

// render is one parent render: the increment handler is rebuilt, the
// toggle handler is reused.
func (d *CallbackDemo) render() {
	d.increment = d.newHandler(func() { d.Count++ })
	d.IncrementButton.render("Increment Count", d.increment)
	d.ToggleButton.render("Toggle Active", d.toggle)
}

// ClickIncrement runs the current increment handler, then re-renders.
func (d *CallbackDemo) ClickIncrement() {
	d.increment.Call()
	d.render()
}

// ClickToggle runs the stable toggle handler, then re-renders.
func (d *CallbackDemo) ClickToggle() {
	d.toggle.Call()
	d.render()
}

// ParentRenders is the number of parent renders so far, including mount.
func (d *CallbackDemo) ParentRenders() int {
	return d.IncrementButton.Renders()
}
