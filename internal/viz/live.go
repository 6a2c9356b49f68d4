// Package viz is the terminal frontend: a bubbletea model that plays the
// run headless and renders telemetry with asciigraph.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/marble/internal/config"
	"github.com/san-kum/marble/internal/input"
	"github.com/san-kum/marble/internal/scene"
	"github.com/san-kum/marble/internal/sim"
)

const (
	frameDt         = 1.0 / 60.0
	historyCapacity = 600
	graphWidth      = 70
	graphHeight     = 10

	// Terminals deliver key presses, not key-up events, so a press counts
	// as held for this many frames and repeats keep it alive.
	holdFrames = 12
)

type TickMsg time.Time

// keyHold adapts press events to the held-key predicate the steering
// controller expects. Each press arms a countdown that tick decrements.
type keyHold struct {
	left, right int
}

func (k *keyHold) press(a input.Action) {
	switch a {
	case input.SteerLeft:
		k.left = holdFrames
	case input.SteerRight:
		k.right = holdFrames
	}
}

func (k *keyHold) tick() {
	if k.left > 0 {
		k.left--
	}
	if k.right > 0 {
		k.right--
	}
}

func (k *keyHold) Held(a input.Action) bool {
	switch a {
	case input.SteerLeft:
		return k.left > 0
	case input.SteerRight:
		return k.right > 0
	}
	return false
}

// Model drives the simulation loop from terminal ticks.
type Model struct {
	cfg     *config.Config
	loop    *sim.Loop
	keys    *keyHold
	t       float64
	running bool
	speeds  []float64
}

func NewModel(cfg *config.Config) Model {
	keys := &keyHold{}
	return Model{
		cfg:     cfg,
		loop:    &sim.Loop{Scene: scene.Bootstrap(cfg), Input: keys},
		keys:    keys,
		running: true,
		speeds:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "left", "a":
			m.keys.press(input.SteerLeft)
		case "right", "d":
			m.keys.press(input.SteerRight)
		}
	case TickMsg:
		if m.running {
			m.loop.Step(frameDt)
			m.t += frameDt
			m.recordSpeed()
		}
		m.keys.tick()
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) reset() {
	keys := &keyHold{}
	m.loop = &sim.Loop{Scene: scene.Bootstrap(m.cfg), Input: keys}
	m.keys = keys
	m.t = 0
	m.speeds = m.speeds[:0]
}

func (m *Model) recordSpeed() {
	marble := m.loop.Scene.Marble()
	if marble == nil {
		return
	}
	m.speeds = append(m.speeds, marble.Velocity.Len())
	if len(m.speeds) > historyCapacity {
		m.speeds = m.speeds[1:]
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("marble run"))
	b.WriteString("\n")
	b.WriteString(m.statsView())
	b.WriteString("\n")
	b.WriteString(m.graphView())
	b.WriteString(helpStyle.Render("←/a →/d steer   space pause   r reset   q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statsView() string {
	marble := m.loop.Scene.Marble()
	if marble == nil {
		return statsStyle.Render("marble missing")
	}
	cam := m.loop.Scene.Camera.Position

	rows := []string{
		statRow("time", fmt.Sprintf("%7.2f s", m.t)),
		statRow("pos", fmt.Sprintf("% 6.2f % 6.2f % 6.2f",
			marble.Position.X(), marble.Position.Y(), marble.Position.Z())),
		statRow("vel", fmt.Sprintf("% 6.2f % 6.2f % 6.2f",
			marble.Velocity.X(), marble.Velocity.Y(), marble.Velocity.Z())),
		statRow("speed", fmt.Sprintf("%7.2f m/s", marble.Velocity.Len())),
		statRow("camera", fmt.Sprintf("% 6.2f % 6.2f % 6.2f",
			cam.X(), cam.Y(), cam.Z())),
	}
	if !m.running {
		rows = append(rows, activeStyle.Render("paused"))
	}
	return statsStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) graphView() string {
	if len(m.speeds) < 2 {
		return graphStyle.Render("collecting telemetry...")
	}
	data := m.speeds
	if len(data) > graphWidth {
		data = data[len(data)-graphWidth:]
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("speed (m/s)"),
	)
	return graphStyle.Render(graph)
}

func statRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// Run starts the live TUI and blocks until it exits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}
