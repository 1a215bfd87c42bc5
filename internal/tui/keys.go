package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeAny     = "*"
	scopeEditing = "editing"
)

type keyBinding struct {
	action  string
	binding key.Binding
	scopes  []string
}

func bind(action, help string, keys []string, scopes ...string) keyBinding {
	return keyBinding{
		action:  action,
		binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		scopes:  scopes,
	}
}

// keyRegistry maps key presses to actions per scope. A scope is a route
// path, or scopeEditing while a form field has focus.
type keyRegistry struct {
	bindings []keyBinding
}

func newKeyRegistry(bindings []keyBinding) *keyRegistry {
	return &keyRegistry{bindings: slices.Clone(bindings)}
}

// action returns the first action bound to msg in scope.
func (r *keyRegistry) action(msg tea.KeyMsg, scope string) (string, bool) {
	for _, b := range r.bindings {
		if scopeMatch(scope, b.scopes) && key.Matches(msg, b.binding) {
			return b.action, true
		}
	}
	return "", false
}

// forScope lists route bindings first, then the global ones.
func (r *keyRegistry) forScope(scope string) []key.Binding {
	var local, global []key.Binding
	for _, b := range r.bindings {
		switch {
		case slices.Contains(b.scopes, scope):
			local = append(local, b.binding)
		case scope != scopeEditing && scopeMatch(scope, b.scopes):
			global = append(global, b.binding)
		}
	}
	return append(local, global...)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return scope != scopeEditing
	}
	for _, s := range scopes {
		if s == scope || (s == scopeAny && scope != scopeEditing) {
			return true
		}
	}
	return false
}

func defaultKeyBindings() []keyBinding {
	home, about, theme := string(routeHome), string(routeAbout), string(routeTheme)
	auth, bank, cb := string(routeAuth), string(routeBank), string(routeCallback)
	return []keyBinding{
		bind("increment", "count+", []string{"+", "="}, home),
		bind("decrement", "count-", []string{"-"}, home),
		bind("reset-count", "count 0", []string{"0"}, home),
		bind("slide-next", "next slide", []string{"n", "right"}, home),
		bind("slide-prev", "prev slide", []string{"p", "left"}, home),
		bind("slide-restart", "restart", []string{"r"}, home),
		bind("aspect-down", "aspect", []string{"j", "down"}, home),
		bind("aspect-up", "aspect", []string{"k", "up"}, home),
		bind("upvote", "upvote", []string{"u"}, home),
		bind("downvote", "downvote", []string{"d"}, home),
		bind("edit", "contact form", []string{"c"}, home),

		bind("auth", "login/logout", []string{"l"}, about, auth),
		bind("edit", "new post", []string{"e"}, about),

		bind("toggle-theme", "toggle theme", []string{"t"}, theme),
		bind("toggle-language", "change language", []string{"l"}, theme),

		bind("edit", "amount", []string{"e"}, bank),
		bind("deposit", "deposit", []string{"d"}, bank),
		bind("withdraw", "withdraw", []string{"w"}, bank),
		bind("reset", "reset", []string{"r"}, bank),

		bind("increment", "increment", []string{"i"}, cb),
		bind("toggle", "toggle active", []string{"t"}, cb),

		{
			action:  "route",
			binding: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "routes")),
			scopes:  []string{scopeAny},
		},
		bind("goto", "go to", []string{"g"}, scopeAny),
		bind("quit", "quit", []string{"q", "ctrl+c"}, scopeAny),

		bind("next-field", "next field", []string{"tab"}, scopeEditing),
		bind("prev-field", "prev field", []string{"shift+tab"}, scopeEditing),
		bind("submit", "submit", []string{"enter"}, scopeEditing),
		bind("cancel", "close", []string{"esc"}, scopeEditing),
		bind("quit", "quit", []string{"ctrl+c"}, scopeEditing),
	}
}
