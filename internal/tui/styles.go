package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/statelab/internal/store"
)

// palette is one Catppuccin flavour.
type palette struct {
	text     lipgloss.Color
	muted    lipgloss.Color
	border   lipgloss.Color
	mantle   lipgloss.Color
	surface0 lipgloss.Color
	accent   lipgloss.Color
	success  lipgloss.Color
	warn     lipgloss.Color
	err      lipgloss.Color
	tabOff   lipgloss.Color
}

var (
	latte = palette{
		text:     "#4c4f69",
		muted:    "#6c6f85",
		border:   "#9ca0b0",
		mantle:   "#e6e9ef",
		surface0: "#ccd0da",
		accent:   "#1e66f5",
		success:  "#40a02b",
		warn:     "#df8e1d",
		err:      "#d20f39",
		tabOff:   "#8c8fa1",
	}
	mocha = palette{
		text:     "#cdd6f4",
		muted:    "#a6adc8",
		border:   "#585b70",
		mantle:   "#181825",
		surface0: "#313244",
		accent:   "#89b4fa",
		success:  "#a6e3a1",
		warn:     "#f9e2af",
		err:      "#f38ba8",
		tabOff:   "#7f849c",
	}
)

type styles struct {
	pal         palette
	title       lipgloss.Style
	section     lipgloss.Style
	box         lipgloss.Style
	muted       lipgloss.Style
	success     lipgloss.Style
	errText     lipgloss.Style
	disabled    lipgloss.Style
	focused     lipgloss.Style
	navBar      lipgloss.Style
	navApp      lipgloss.Style
	tabOn       lipgloss.Style
	tabOff      lipgloss.Style
	statusBar   lipgloss.Style
	statusErr   lipgloss.Style
	footer      lipgloss.Style
	helpKey     lipgloss.Style
	helpDesc    lipgloss.Style
	helpDivider lipgloss.Style
}

func newStyles(mode store.ThemeMode) styles {
	p := latte
	if mode == store.ThemeDark {
		p = mocha
	}
	return styles{
		pal:     p,
		title:   lipgloss.NewStyle().Foreground(p.accent).Bold(true).Underline(true),
		section: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Foreground(p.text).
			Padding(0, 1),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		success:  lipgloss.NewStyle().Foreground(p.success),
		errText:  lipgloss.NewStyle().Foreground(p.err),
		disabled: lipgloss.NewStyle().Foreground(p.tabOff).Strikethrough(true),
		focused:  lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		navBar:   lipgloss.NewStyle().Background(p.mantle).Foreground(p.text),
		navApp:   lipgloss.NewStyle().Background(p.mantle).Foreground(p.accent).Bold(true).Padding(0, 1),
		tabOn: lipgloss.NewStyle().
			Background(p.surface0).
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		tabOff: lipgloss.NewStyle().
			Background(p.mantle).
			Foreground(p.tabOff).
			Padding(0, 1),
		statusBar:   lipgloss.NewStyle().Foreground(p.success).Background(p.surface0),
		statusErr:   lipgloss.NewStyle().Foreground(p.err).Background(p.surface0),
		footer:      lipgloss.NewStyle().Background(p.mantle),
		helpKey:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		helpDesc:    lipgloss.NewStyle().Foreground(p.muted),
		helpDivider: lipgloss.NewStyle().Foreground(p.border),
	}
}

// renderBar draws a single full-width line, truncating or padding text.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
