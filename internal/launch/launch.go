// Package launch wires configuration, the seed data and the Fyne window
// together. Both entry points call Run.
package launch

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/flashforge/internal/config"
	"github.com/ytget/flashforge/internal/model"
	"github.com/ytget/flashforge/internal/seed"
	"github.com/ytget/flashforge/internal/ui"
	"github.com/ytget/flashforge/internal/viewmodel"
)

const (
	AppID   = "com.ytget.flashforge"
	AppName = "FlashForge"
)

// Run starts the application and blocks until the main window is closed
func Run(version string) error {
	log.Printf("%s v%s starting...", AppName, version)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIconResource)

	settings := config.NewSettings(myApp)
	settings.UseBootstrap(cfg)

	vm, err := NewViewModel(data, cfg, settings)
	if err != nil {
		return err
	}
	defer vm.Close()

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	ui.NewRootUI(myWindow, myApp, vm, settings)
	myWindow.ShowAndRun()
	return nil
}

// NewViewModel builds the view model from bootstrap config and stored preferences
func NewViewModel(data model.Seed, cfg *config.Config, settings *config.Settings) (*viewmodel.ViewModel, error) {
	vm, err := viewmodel.New(data,
		viewmodel.WithAdvanceDelay(settings.GetAdvanceDelay()),
		viewmodel.WithFlagDurations(cfg.AvatarMorph, cfg.WaveformPulse),
		viewmodel.WithDarkTheme(settings.GetDarkTheme()),
	)
	if err != nil {
		return nil, fmt.Errorf("create view model: %w", err)
	}
	return vm, nil
}
