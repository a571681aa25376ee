package ui

import (
	"fmt"

	"capsule/internal/dataset"
	"capsule/internal/sampler"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the preview TUI state: the current sample drawn from the
// dataset, resampled in place on demand.
type Model struct {
	title      string
	tracks     []dataset.Track
	perStratum int
	sample     list.Model
	width      int
	height     int
	err        error
	help       help.Model
	keys       keyMap
}

// NewModel draws an initial sample from tracks and builds the preview list.
func NewModel(title string, tracks []dataset.Track, perStratum int) (*Model, error) {
	selected, err := sampler.SampleTracks(tracks, perStratum)
	if err != nil {
		return nil, err
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(trackItems(selected), delegate, 0, 0)
	l.Title = title
	l.SetShowHelp(false)

	return &Model{
		title:      title,
		tracks:     tracks,
		perStratum: perStratum,
		sample:     l,
		help:       help.New(),
		keys:       newKeyMap(),
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sample.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.resample):
			selected, err := sampler.SampleTracks(m.tracks, m.perStratum)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			return m, m.sample.SetItems(trackItems(selected))
		}
	}

	var cmd tea.Cmd
	m.sample, cmd = m.sample.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	view := m.sample.View()
	if m.err != nil {
		view += "\n" + styles.err.Render(fmt.Sprintf("resample failed: %v", m.err))
	}
	return view + "\n" + styles.help.Render(m.help.View(m.keys))
}

// Run starts the preview TUI and blocks until the user quits.
func Run(title string, tracks []dataset.Track, perStratum int) error {
	model, err := NewModel(title, tracks, perStratum)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	return nil
}
