package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.ANSIColor(8))
	hexStyle   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7))
)

// swatch renders one palette entry: index, a colour block and its hex value.
// Transparent entries are drawn as a dotted block.
func swatch(c color.RGBA, index int) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	if c.A == 0 {
		block = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)).Render("····")
	}
	return labelStyle.Render(fmt.Sprint(index)) + " " + block + " " + hexStyle.Render(fmt.Sprintf("%s%02x", hex, c.A))
}
