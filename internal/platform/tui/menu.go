package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Label  string
	GameID string // Empty for entries that open a sub-screen
}

const (
	itemLevelSelect = "Select Level..."
	itemScores      = "High Scores"
)

// MenuModel is the Bubble Tea model for the main menu.
// It offers the game modes, a level picker for the campaign and the scoreboard.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	levelCursor   int
	inLevelSelect bool
	highScores    map[string]int
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	quitting      bool
	selected      *MenuItem
	startLevel    int  // 1-indexed, 0 = from the beginning
	openScores    bool // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := []MenuItem{
		{Label: fmt.Sprintf("Campaign (%d levels)", match3.LevelCount()), GameID: match3.IDCampaign},
		{Label: "Endless", GameID: match3.IDEndless},
		{Label: itemLevelSelect},
		{Label: itemScores},
	}

	highScores := make(map[string]int)
	if store != nil {
		for _, it := range items {
			if it.GameID == "" {
				continue
			}
			if hs, err := store.HighScore(it.GameID); err == nil {
				highScores[it.GameID] = hs
			}
		}
	}

	return MenuModel{
		items:      items,
		highScores: highScores,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
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
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(m.items))

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(m.items))

	case MenuActionScoreboard:
		m.openScores = true
		return m, tea.Quit

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.Label {
		case itemLevelSelect:
			m.inLevelSelect = true
			m.levelCursor = 0
		case itemScores:
			m.openScores = true
			return m, tea.Quit
		default:
			m.selected = &item
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.levelCursor = core.Clamp(m.levelCursor-1, 0, match3.LevelCount()-1)
	case MenuActionDown:
		m.levelCursor = core.Clamp(m.levelCursor+1, 0, match3.LevelCount()-1)
	case MenuActionSelect:
		m.selected = &m.items[0]
		m.startLevel = m.levelCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("M A T C H  T H R E E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if hs := m.highScores[item.GameID]; hs > 0 {
			line += fmt.Sprintf("  (best %d)", hs)
		}
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(menuCursorStyle.Render(centerText(line, m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	targets := match3.LevelTargets()
	for i, name := range match3.LevelNames() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %s (Goal: %d)", cursor, i+1, name, targets[i])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	StartLevel      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}

	switch {
	case m.openScores:
		result.WantsScoreboard = true
	case m.selected != nil:
		result.GameID = m.selected.GameID
		result.StartLevel = m.startLevel
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
