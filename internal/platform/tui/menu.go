package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is what the player picked from the session menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

// MenuModel is the Bubble Tea model for the session menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates a new menu model. best is shown under the title.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		items: []MenuItem{
			{Title: "Play", Choice: ChoicePlay},
			{Title: "High Scores", Choice: ChoiceScores},
			{Title: "Quit", Choice: ChoiceQuit},
		},
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.chosen = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.chosen = m.items[m.cursor].Choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(defaultPrimary))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(defaultAccent))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	top := (m.height - len(m.items) - 8) / 2
	if top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}

	b.WriteString(titleStyle.Render(centerText("J A V I   R U N", m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText(bestLine(m.best), m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + item.Title
			style = selectedStyle
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

func bestLine(best int) string {
	if best <= 0 {
		return "No high score yet"
	}
	return "Best: " + strconv.Itoa(best)
}

// Chosen returns the picked entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}
