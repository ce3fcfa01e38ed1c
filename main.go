package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/PixPMusic/xy-midi-controller/internal/config"
	"github.com/PixPMusic/xy-midi-controller/internal/midi"
	"github.com/PixPMusic/xy-midi-controller/internal/preset"
	"github.com/PixPMusic/xy-midi-controller/internal/tray"
	"github.com/PixPMusic/xy-midi-controller/internal/window"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	presets := preset.Load(cfg.PresetFile)

	// Initialize MIDI; the destination is closed before the driver
	midiManager := midi.NewManager()
	defer midiManager.Close()
	output := midi.NewOutput(midiManager)
	defer output.Close()

	// Create Fyne app
	fyneApp := app.NewWithID("com.pixpmusic.xymidicontroller")

	mainWindow := window.NewMainWindow(fyneApp, cfg, midiManager, output, presets)

	// Setup system tray
	trayMenu := tray.Setup(fyneApp, tray.Callbacks{
		OnOpen: func() {
			mainWindow.Show()
		},
		OnApplyPreset: func(name string) {
			mainWindow.ApplyPreset(name)
		},
		OnQuit: func() {
			fyneApp.Quit()
		},
	})
	mainWindow.OnPresetsChanged = trayMenu.SetPresets
	trayMenu.SetPresets(presets.Names(), mainWindow.State().Preset)

	// Quit the app loop on interrupt so the deferred teardown runs
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigs:
			log.Printf("Received %v, shutting down", sig)
			fyne.Do(fyneApp.Quit)
		case <-done:
		}
	}()

	// Open the remembered or first MIDI output
	mainWindow.InitializeDevices()

	// Run the Fyne app (this blocks until the window closes or app.Quit is called)
	mainWindow.ShowAndRun()

	close(done)
	signal.Stop(sigs)
}
