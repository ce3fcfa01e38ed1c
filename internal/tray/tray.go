package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

// Callbacks for tray menu actions
type Callbacks struct {
	OnOpen        func()
	OnApplyPreset func(name string)
	OnQuit        func()
}

// Tray is the system tray menu. A nil *Tray is valid and does nothing,
// which is what Setup returns when the app has no tray.
type Tray struct {
	desk      desktop.App
	callbacks Callbacks
	menu      *fyne.Menu
}

// Setup initializes the system tray using Fyne's built-in support
func Setup(app fyne.App, callbacks Callbacks) *Tray {
	desk, ok := app.(desktop.App)
	if !ok {
		return nil
	}

	t := &Tray{desk: desk, callbacks: callbacks}
	t.menu = t.buildMenu(nil, "")
	desk.SetSystemTrayMenu(t.menu)
	desk.SetSystemTrayIcon(theme.MediaPlayIcon())
	return t
}

// SetPresets rebuilds the preset submenu, checking the selected preset
func (t *Tray) SetPresets(names []string, selected string) {
	if t == nil {
		return
	}
	t.menu = t.buildMenu(names, selected)
	t.desk.SetSystemTrayMenu(t.menu)
}

func (t *Tray) buildMenu(names []string, selected string) *fyne.Menu {
	openItem := fyne.NewMenuItem("Open XY MIDI Controller", func() {
		if t.callbacks.OnOpen != nil {
			t.callbacks.OnOpen()
		}
	})

	presetsItem := fyne.NewMenuItem("Presets", nil)
	presetsItem.ChildMenu = fyne.NewMenu("", t.presetItems(names, selected)...)
	presetsItem.Disabled = len(names) == 0

	quitItem := fyne.NewMenuItem("Quit", func() {
		if t.callbacks.OnQuit != nil {
			t.callbacks.OnQuit()
		}
	})
	// Replaces the driver's own Quit item
	quitItem.IsQuit = true

	return fyne.NewMenu("XY MIDI Controller",
		openItem,
		fyne.NewMenuItemSeparator(),
		presetsItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}

func (t *Tray) presetItems(names []string, selected string) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(names))
	for _, name := range names {
		item := fyne.NewMenuItem(name, func() {
			if t.callbacks.OnApplyPreset != nil {
				t.callbacks.OnApplyPreset(name)
			}
		})
		item.Checked = name == selected
		items = append(items, item)
	}
	return items
}
