package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/refresh-arcade/internal/config"
)

// App manages the full session flow: menu -> header -> menu.
// This is the top-level model used by the menu command and SSH sessions.
type App struct {
	cfg      config.RefreshConfig
	seed     int64
	logger   *log.Logger
	width    int
	height   int
	menu     MenuModel
	refresh  *Model
	quitting bool
}

// NewApp creates an app starting at the variant picker.
func NewApp(cfg config.RefreshConfig, seed int64, logger *log.Logger, width, height int) App {
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}
	return App{
		cfg:    cfg,
		seed:   seed,
		logger: logger,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height),
	}
}

// Init initializes the app.
func (a App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update handles messages for the app.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	if a.refresh != nil {
		return a.updateRefresh(msg)
	}
	return a.updateMenu(msg)
}

// updateMenu handles updates while picking a variant.
func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := a.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		a.menu = menuModel
	}

	if a.menu.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if selected := a.menu.Selected(); selected != nil {
		model, err := NewModel(Options{
			Variant: *selected,
			Config:  a.cfg,
			Seed:    a.seed,
			Logger:  a.logger,
			Width:   a.width,
			Height:  a.height,
		})
		if err != nil {
			a.logger.Error("cannot start header", "variant", *selected, "error", err)
			a.menu = NewMenuModel(a.width, a.height)
			return a, nil
		}
		model.embedded = true
		a.refresh = &model
		return a, model.Init()
	}

	return a, cmd
}

// updateRefresh handles updates while a header is running.
func (a App) updateRefresh(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.refresh.Update(msg)
	if model, ok := newModel.(Model); ok {
		a.refresh = &model
	}

	if a.refresh.BackToMenu() {
		a.refresh = nil
		a.menu = NewMenuModel(a.width, a.height)
		return a, a.menu.Init()
	}

	if a.refresh.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	return a, cmd
}

// View renders the current view.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.refresh != nil {
		return a.refresh.View()
	}
	return a.menu.View()
}

// RunApp starts the menu-driven program on the local terminal.
func RunApp(cfg config.RefreshConfig, seed int64, logger *log.Logger, width, height int) error {
	p := tea.NewProgram(
		NewApp(cfg, seed, logger, width, height),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
