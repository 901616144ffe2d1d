package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the board.
type Theme struct {
	// Canvas
	HiddenCell lipgloss.Style
	Frame      lipgloss.Style

	// HUD
	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	BarFilled   lipgloss.Style
	BarEmpty    lipgloss.Style
	ArtBarFill  lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style

	// Quest list
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	Easy       lipgloss.Style
	Medium     lipgloss.Style
	Hard       lipgloss.Style

	// Overlays
	Banner      lipgloss.Style
	BannerTitle lipgloss.Style
	Panel       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HiddenCell: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),

		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		BarFilled:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		BarEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ArtBarFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Easy:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Hard:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Banner: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 2),
		BannerTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// periodPalettes tints revealed cells by art period. Unknown periods use
// defaultPalette.
var periodPalettes = map[string][]lipgloss.Color{
	"Cubism":                    {"130", "137", "180", "95", "223"},
	"Post-Impressionism":        {"18", "25", "33", "220", "229"},
	"Suprematism":               {"255", "254", "253", "252", "231"},
	"Surrealism":                {"136", "179", "74", "101", "222"},
	"Indian Classical":          {"124", "166", "178", "94", "223"},
	"Indian Folk":               {"160", "214", "232", "229", "22"},
	"Indian Modern":             {"88", "172", "30", "180", "16"},
	"Indian Abstract":           {"160", "226", "21", "16", "231"},
	"Indian Nationalist":        {"94", "137", "230", "101", "58"},
	"Indian Contemporary":       {"52", "131", "67", "187", "238"},
	"Pop Art":                   {"196", "231", "220", "16", "160"},
	"Abstract Expressionism":    {"139", "182", "59", "224", "88"},
	"Abstract":                  {"21", "196", "226", "16", "208"},
	"De Stijl":                  {"196", "21", "226", "231", "16"},
	"Conceptual":                {"255", "250", "245", "188", "231"},
	"Ukiyo-e":                   {"17", "24", "153", "230", "187"},
	"Neo-Expressionism":         {"226", "196", "16", "33", "231"},
	"Nouveau Réalisme":          {"20", "19", "21", "18", "27"},
	"Contemporary Architecture": {"250", "244", "67", "231", "238"},
}

var defaultPalette = []lipgloss.Color{"205", "51", "46", "226", "135"}

// paletteFor returns the palette of an art period.
func paletteFor(period string) []lipgloss.Color {
	if p, ok := periodPalettes[period]; ok {
		return p
	}
	return defaultPalette
}
