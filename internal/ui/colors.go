package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	tomato  = lipgloss.Color("#E8743B")
	basil   = lipgloss.Color("#04B575")
	chili   = lipgloss.Color("#FF0000")
	saffron = lipgloss.Color("#FFA500")
	pepper  = lipgloss.Color("#626262")
	cream   = lipgloss.Color("#FFF7E6")
)

var styles = newPalette()

// palette is the browser's stylesheet.
type palette struct {
	title  lipgloss.Style
	label  lipgloss.Style
	badge  lipgloss.Style
	bullet lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	muted  lipgloss.Style
}

func newPalette() *palette {
	return &palette{
		title:  lipgloss.NewStyle().Foreground(tomato).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(tomato).Bold(true),
		badge:  lipgloss.NewStyle().Foreground(cream).Background(tomato).Padding(0, 1),
		bullet: lipgloss.NewStyle().Foreground(saffron),
		ok:     lipgloss.NewStyle().Foreground(basil).Bold(true),
		err:    lipgloss.NewStyle().Foreground(chili).Bold(true),
		warn:   lipgloss.NewStyle().Foreground(saffron),
		muted:  lipgloss.NewStyle().Foreground(pepper).Italic(true),
	}
}

// servings renders a "serves n" badge.
func (p *palette) servings(n int) string {
	return p.badge.Render(fmt.Sprintf("serves %d", n))
}
