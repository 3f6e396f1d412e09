// cmd/game/report.go
package main

import (
	"fmt"

	"firewall-frenzy/internal/app"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func outcomeStyle(o app.Outcome) lipgloss.Style {
	switch o {
	case app.OutcomeVictory:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	case app.OutcomeDefeat:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
}

// renderReport formats an autopilot report for the terminal.
func renderReport(r app.Report) string {
	rows := [][2]string{
		{"outcome", outcomeStyle(r.Outcome).Render(string(r.Outcome))},
		{"match", r.MatchID},
		{"seed", fmt.Sprint(r.Seed)},
		{"waves cleared", fmt.Sprint(r.WavesCleared)},
		{"towers", fmt.Sprint(r.TowersBuilt)},
		{"kills", fmt.Sprint(r.Kills)},
		{"leaks", fmt.Sprint(r.Leaks)},
		{"credits", fmt.Sprint(r.Credits)},
		{"health", fmt.Sprintf("%.0f", r.Health)},
		{"ticks", fmt.Sprintf("%d (%.1fs)", r.Ticks, float64(r.Ticks)/60)},
	}
	lines := []string{titleStyle.Render("Firewall Frenzy - autopilot")}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), row[1]))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
