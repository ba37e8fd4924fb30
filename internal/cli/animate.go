package cli

import (
	"fmt"
	"strings"
	"time"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/simulate"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/spread"
)

// Default replay pacing: every frame advances each network by up to
// stepsPerFrame discoveries, so the three spreads race in lockstep.
const (
	stepsPerFrame = 5
	frameInterval = 50 * time.Millisecond
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// animNetwork tracks one network's replay state.
type animNetwork struct {
	name    string
	stream  *spread.Stream
	bar     bubblesprogress.Model
	total   int
	reached int
	depth   int
	done    bool
}

// spreadModel is the bubbletea model that replays the message spread of
// all three networks side by side.
type spreadModel struct {
	networks []*animNetwork
	perFrame int
	interval time.Duration
	quitting bool
}

// newSpreadModel prepares a replay over the run's graphs. The traversal is
// re-run from scratch, which is deterministic and cheap next to rendering.
func newSpreadModel(result *simulate.Result) (spreadModel, error) {
	m := spreadModel{perFrame: stepsPerFrame, interval: frameInterval}
	for _, nw := range result.Networks {
		stream, err := spread.NewStream(nw.Graph, result.Options.Start)
		if err != nil {
			return spreadModel{}, fmt.Errorf("replay %s network: %w", nw.Name, err)
		}

		bar := bubblesprogress.New(
			bubblesprogress.WithSolidFill(string(networkColor(nw.Name))),
			bubblesprogress.WithoutPercentage(),
		)
		bar.Width = 30

		m.networks = append(m.networks, &animNetwork{
			name:   nw.Name,
			stream: stream,
			bar:    bar,
			total:  nw.Graph.Order(),
		})
	}
	return m, nil
}

func (m spreadModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m spreadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.advance() {
			return m, tea.Quit
		}
		return m, tick(m.interval)
	}
	return m, nil
}

// advance steps every unfinished stream and reports whether all finished.
func (m spreadModel) advance() bool {
	allDone := true
	for _, nw := range m.networks {
		if nw.done {
			continue
		}
		for i := 0; i < m.perFrame; i++ {
			snap, ok := nw.stream.Next()
			if !ok {
				nw.done = true
				break
			}
			nw.reached = len(snap.Visited)
			nw.depth = snap.Depth
		}
		if !nw.done {
			allDone = false
		}
	}
	return allDone
}

func (m spreadModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Message Spread"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("q skip"))
	b.WriteString("\n\n")

	for _, nw := range m.networks {
		frac := 0.0
		if nw.total > 0 {
			frac = float64(nw.reached) / float64(nw.total)
		}
		b.WriteString(networkStyle(nw.name).Render(fmt.Sprintf("%-12s", nw.name)))
		b.WriteString(" ")
		b.WriteString(nw.bar.ViewAs(frac))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %3d/%d · step %d", nw.reached, nw.total, nw.depth)))
		b.WriteString("\n")
	}

	return b.String()
}

// runAnimation replays the spread in the terminal and returns once every
// network finished or the user skipped it.
func runAnimation(result *simulate.Result) error {
	m, err := newSpreadModel(result)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
