package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/artist-gallery/internal/app"
	"github.com/handiism/artist-gallery/internal/config"
	"github.com/handiism/artist-gallery/internal/logging"
)

// Run starts the TUI application. Logs go to settings.LogFile so they do
// not draw over the alternate screen.
func Run(settings *config.Settings) error {
	logCfg := settings.ToLoggingConfig()
	if settings.LogFile != "" {
		f, err := logging.OpenFile(settings.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logCfg.Output = f
	} else {
		logCfg.Level = "disabled"
	}
	logging.Init(logCfg)

	a, err := app.New(settings, nil)
	if err != nil {
		return err
	}

	log := logging.With("tui")
	log.Info().Int("artists", a.Store.Count()).Msg("starting gallery")

	m := NewModel(a.Store, a.Cache, settings, a.ControllerOptions()...)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	if err != nil {
		log.Error().Err(err).Msg("program exited")
	}
	return err
}
