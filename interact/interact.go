// Package interact is a terminal inspector for reconstructed scenes: it
// lists every room and re-drives the highlight as the selection toggles,
// exercising the same material-only update path the external UI uses.
package interact

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rosh-nik15/BlueprintX-AI/scene"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	label *scene.Label
}

func (i item) Title() string {
	name := i.label.Text
	if name == "" {
		name = i.label.RoomID
	}
	if i.label.Highlighted {
		return "* " + name
	}
	return name
}

func (i item) Description() string {
	return fmt.Sprintf("%d sqft  (%s)", i.label.AreaSqFt, i.label.RoomID)
}

func (i item) FilterValue() string {
	return i.label.Text
}

type model struct {
	list  list.Model
	scene *scene.Scene
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if sel, ok := m.list.SelectedItem().(item); ok {
				if m.scene.HighlightedRoom() == sel.label.RoomID {
					m.scene.SetHighlight("")
				} else {
					m.scene.SetHighlight(sel.label.RoomID)
				}
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Interact runs the inspector over a composed scene until the user quits.
func Interact(s *scene.Scene) error {
	items := make([]list.Item, len(s.Labels))
	for i, l := range s.Labels {
		items[i] = item{label: l}
	}

	m := model{list: list.New(items, list.NewDefaultDelegate(), 0, 0), scene: s}
	m.list.Title = "Reconstructed rooms"

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
	return nil
}
