package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/simulate"
)

// sparkLevels are the bar heights of the terminal chart, lowest to highest.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline renders a cumulative reach curve as one character per step.
// Each character's height is the fraction of the population reached by
// that step; a full bar means everyone.
func sparkline(cumulative []int, total int) string {
	if total <= 0 {
		return ""
	}

	runes := make([]rune, 0, len(cumulative))
	for _, reached := range cumulative {
		idx := reached*len(sparkLevels)/total - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkLevels) {
			idx = len(sparkLevels) - 1
		}
		runes = append(runes, sparkLevels[idx])
	}
	return string(runes)
}

// printSpreadChart prints one reach curve per network, colored by series.
// Shorter lines reach full height sooner: that is the small-world effect.
func printSpreadChart(networks []simulate.NetworkResult) {
	printNewline()
	fmt.Println(StyleTitle.Render("Message Spread Across Networks"))

	for _, nw := range networks {
		style := networkStyle(nw.Name)
		line := sparkline(nw.Reach.Cumulative(), nw.Graph.Order())
		fmt.Printf("  %s %s %s\n",
			style.Render(fmt.Sprintf("%-12s", nw.Name)),
			style.Render(line),
			StyleDim.Render(fmt.Sprintf("%d steps", nw.StepsToAll)))
	}
}

// printResultsTable prints the per-network summary table.
func printResultsTable(networks []simulate.NetworkResult) {
	rows := make([][]string, 0, len(networks))
	for _, nw := range networks {
		reached := fmt.Sprintf("%d/%d", nw.Reach.Total(), nw.Graph.Order())
		rows = append(rows, []string{nw.Name, strconv.Itoa(nw.StepsToAll), reached})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Network", "Steps to Reach Everyone", "Reached").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if row >= len(networks) {
				return lipgloss.NewStyle()
			}
			switch col {
			case 0:
				return networkStyle(networks[row].Name)
			case 1:
				return StyleNumber
			}
			return StyleValue
		})

	printNewline()
	fmt.Println(t.Render())
}
