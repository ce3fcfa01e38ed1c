package window

import (
	"fmt"
	"log"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/PixPMusic/xy-midi-controller/internal/config"
	"github.com/PixPMusic/xy-midi-controller/internal/controller"
	"github.com/PixPMusic/xy-midi-controller/internal/midi"
	"github.com/PixPMusic/xy-midi-controller/internal/pad"
	"github.com/PixPMusic/xy-midi-controller/internal/preset"
)

const noneOption = "(None)"

// MainWindow manages the main application window
type MainWindow struct {
	window      fyne.Window
	app         fyne.App
	cfg         *config.Config
	midiManager *midi.Manager
	presets     *preset.Store
	ctrl        *controller.Controller

	pad       *xyPad
	xCaption  *widget.Label
	yCaption  *rotatedCaption
	xCCEntry  *commitEntry
	yCCEntry  *commitEntry
	deviceSel *widget.Select
	channel   *widget.Select
	presetSel *widget.Select
	nameEntry *widget.Entry
	status    *widget.Label
	values    *widget.Label

	ports   []midi.Port
	syncing bool // true while widgets are updated from state

	shownPresets []string
	shownPreset  string

	// OnPresetsChanged is called with the preset names and the selected one
	// whenever either may have changed
	OnPresetsChanged func(names []string, selected string)
}

// NewMainWindow creates the main application window
func NewMainWindow(app fyne.App, cfg *config.Config, midiManager *midi.Manager, output controller.Emitter, presets *preset.Store) *MainWindow {
	win := app.NewWindow("XY MIDI Controller")

	mw := &MainWindow{
		window:      win,
		app:         app,
		cfg:         cfg,
		midiManager: midiManager,
		presets:     presets,
	}

	mw.ctrl = controller.New(output, presets, controller.Hooks{
		OnNotify: mw.notify,
		OnRevert: mw.revert,
		OnChange: mw.sync,
	})

	mw.setupUI()
	if _, ok := presets.Get(cfg.LastPreset); ok {
		mw.ctrl.Dispatch(controller.PresetAction{Kind: controller.PresetSelect, Name: cfg.LastPreset})
	} else {
		mw.sync(mw.ctrl.State())
	}

	win.Resize(fyne.NewSize(600, 550))
	win.CenterOnScreen()
	win.SetMaster()

	return mw
}

// Show brings the window to the front
func (mw *MainWindow) Show() {
	mw.window.Show()
	mw.window.RequestFocus()
}

// ShowAndRun shows the window and runs the application loop
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
}

// Dispatch forwards an event to the controller
func (mw *MainWindow) Dispatch(ev controller.Event) {
	mw.ctrl.Dispatch(ev)
}

// State returns the controller state
func (mw *MainWindow) State() controller.State {
	return mw.ctrl.State()
}

// InitializeDevices lists outputs and opens the remembered or first one
func (mw *MainWindow) InitializeDevices() {
	mw.refreshDevices()
}

// ApplyPreset selects a preset as if picked from the preset list
func (mw *MainWindow) ApplyPreset(name string) {
	mw.ctrl.Dispatch(controller.PresetAction{Kind: controller.PresetSelect, Name: name})
}

func (mw *MainWindow) setupUI() {
	mw.window.SetContent(container.NewVBox(
		widget.NewCard("", "XY Pad", mw.createPadSection()),
		widget.NewCard("", "CC Values", mw.createCCSection()),
		widget.NewCard("", "MIDI Output", mw.createOutputSection()),
		widget.NewCard("", "Presets", mw.createPresetSection()),
		mw.createStatusBar(),
	))
}

// ============ XY PAD ============

func (mw *MainWindow) createPadSection() fyne.CanvasObject {
	mw.pad = newXYPad(
		func(pos pad.Point, size pad.Size) {
			mw.ctrl.Dispatch(controller.PointerDown{Pos: pos, Surface: size})
		},
		func(pos pad.Point, size pad.Size) {
			mw.ctrl.Dispatch(controller.PointerMove{Pos: pos, Surface: size})
		},
		func() {
			if mw.ctrl.State().Dragging {
				mw.ctrl.Dispatch(controller.PointerUp{})
			}
		},
	)

	mw.xCaption = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	mw.yCaption = newRotatedCaption("")

	return container.NewBorder(nil, mw.xCaption, container.NewCenter(mw.yCaption.img), nil, mw.pad)
}

// ============ CC VALUES ============

func (mw *MainWindow) createCCSection() fyne.CanvasObject {
	mw.yCCEntry = newCommitEntry(func(s string) {
		mw.ctrl.Dispatch(controller.FieldChanged{Field: controller.FieldYCC, Value: s})
	})
	mw.xCCEntry = newCommitEntry(func(s string) {
		mw.ctrl.Dispatch(controller.FieldChanged{Field: controller.FieldXCC, Value: s})
	})

	return widget.NewForm(
		widget.NewFormItem("Y CC value:", mw.yCCEntry),
		widget.NewFormItem("X CC value:", mw.xCCEntry),
	)
}

// ============ MIDI OUTPUT ============

func (mw *MainWindow) createOutputSection() fyne.CanvasObject {
	mw.deviceSel = widget.NewSelect([]string{noneOption}, func(s string) {
		if mw.syncing {
			return
		}
		mw.selectDevice(s)
	})
	mw.deviceSel.PlaceHolder = "Select..."

	refreshBtn := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		mw.refreshDevices()
	})

	channels := make([]string, 16)
	for i := range channels {
		channels[i] = strconv.Itoa(i + 1)
	}
	mw.channel = widget.NewSelect(channels, func(s string) {
		if mw.syncing {
			return
		}
		mw.ctrl.Dispatch(controller.FieldChanged{Field: controller.FieldChannel, Value: s})
	})

	return widget.NewForm(
		widget.NewFormItem("MIDI Device:", container.NewBorder(nil, nil, nil, refreshBtn, mw.deviceSel)),
		widget.NewFormItem("MIDI Channel:", container.NewHBox(mw.channel)),
	)
}

// refreshDevices re-enumerates outputs and opens one if none is open:
// the remembered device when present, otherwise the first
func (mw *MainWindow) refreshDevices() {
	ports, err := mw.midiManager.ListOutPorts()
	if err != nil {
		log.Printf("Failed to list MIDI outputs: %v", err)
	}
	mw.ports = ports

	options := []string{noneOption}
	for _, p := range ports {
		options = append(options, p.String())
	}
	mw.deviceSel.Options = options
	mw.deviceSel.Refresh()

	if mw.ctrl.State().Device != controller.NoDevice || len(ports) == 0 {
		mw.sync(mw.ctrl.State())
		return
	}

	choice := ports[0]
	for _, p := range ports {
		if p.Name == mw.cfg.LastDevice {
			choice = p
			break
		}
	}
	mw.selectDevice(choice.String())
}

func (mw *MainWindow) selectDevice(option string) {
	for _, p := range mw.ports {
		if p.String() == option {
			mw.ctrl.Dispatch(controller.FieldChanged{Field: controller.FieldDevice, Value: strconv.Itoa(p.Index)})
			return
		}
	}
	mw.ctrl.Dispatch(controller.FieldChanged{Field: controller.FieldDevice, Value: ""})
}

// ============ PRESETS ============

func (mw *MainWindow) createPresetSection() fyne.CanvasObject {
	mw.presetSel = widget.NewSelect(nil, func(s string) {
		if mw.syncing {
			return
		}
		mw.nameEntry.SetText(s)
		mw.ctrl.Dispatch(controller.PresetAction{Kind: controller.PresetSelect, Name: s})
	})
	mw.presetSel.PlaceHolder = "Select preset..."

	mw.nameEntry = widget.NewEntry()
	mw.nameEntry.SetPlaceHolder("Preset name")

	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		mw.ctrl.Dispatch(controller.PresetAction{Kind: controller.PresetSave, Name: mw.nameEntry.Text})
	})
	saveBtn.Importance = widget.HighImportance

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		name := mw.ctrl.State().Preset
		if name == "" || name == preset.DefaultName {
			mw.ctrl.Dispatch(controller.PresetAction{Kind: controller.PresetDelete, Name: name})
			return
		}
		dialog.ShowConfirm("Delete Preset", "Are you sure you want to delete '"+name+"'?",
			func(ok bool) {
				if ok {
					mw.ctrl.Dispatch(controller.PresetAction{Kind: controller.PresetDelete, Name: name})
				}
			}, mw.window)
	})

	return container.NewGridWithColumns(2,
		mw.presetSel,
		container.NewBorder(nil, nil, nil, container.NewHBox(saveBtn, deleteBtn), mw.nameEntry),
	)
}

// ============ STATUS ============

func (mw *MainWindow) createStatusBar() fyne.CanvasObject {
	mw.status = widget.NewLabel("Status: Ready")
	mw.values = widget.NewLabel("")
	return container.NewHBox(mw.status, layout.NewSpacer(), mw.values)
}

// ============ CONTROLLER HOOKS ============

func (mw *MainWindow) notify(n controller.Notify) {
	switch n.Severity {
	case controller.SeverityError:
		content := container.NewHBox(widget.NewIcon(theme.ErrorIcon()), widget.NewLabel(n.Message))
		dialog.ShowCustom(n.Title, "OK", content, mw.window)
	default:
		dialog.ShowInformation(n.Title, n.Message, mw.window)
	}
}

// revert puts a rejected field back to the value the controller holds
func (mw *MainWindow) revert(f controller.Field) {
	s := mw.ctrl.State()

	mw.syncing = true
	defer func() { mw.syncing = false }()

	switch f {
	case controller.FieldXCC:
		mw.xCCEntry.SetText(strconv.Itoa(int(s.X.CC)))
	case controller.FieldYCC:
		mw.yCCEntry.SetText(strconv.Itoa(int(s.Y.CC)))
	case controller.FieldChannel:
		mw.channel.SetSelected(strconv.Itoa(int(s.Channel) + 1))
	case controller.FieldDevice:
		mw.deviceSel.SetSelected(mw.deviceOption(s))
	}
}

// sync redraws every widget from the controller state
func (mw *MainWindow) sync(s controller.State) {
	mw.syncing = true
	defer func() { mw.syncing = false }()

	mw.pad.SetValues(s.X.Value, s.Y.Value)
	mw.xCaption.SetText(fmt.Sprintf("X → CC %d", s.X.CC))
	mw.yCaption.SetText(fmt.Sprintf("Y → CC %d", s.Y.CC))
	mw.values.SetText(fmt.Sprintf("X: %d, Y: %d", s.X.Value, s.Y.Value))

	// Leave a field alone while the user is typing in it
	if !mw.isFocused(mw.xCCEntry) {
		setEntryText(&mw.xCCEntry.Entry, strconv.Itoa(int(s.X.CC)))
	}
	if !mw.isFocused(mw.yCCEntry) {
		setEntryText(&mw.yCCEntry.Entry, strconv.Itoa(int(s.Y.CC)))
	}
	mw.channel.SetSelected(strconv.Itoa(int(s.Channel) + 1))
	mw.deviceSel.SetSelected(mw.deviceOption(s))

	if s.Device == controller.NoDevice {
		mw.status.SetText("Status: No device selected")
	} else {
		mw.status.SetText("Status: Connected to " + mw.deviceOption(s))
	}

	names := mw.presets.Names()
	if !slices.Equal(names, mw.shownPresets) || s.Preset != mw.shownPreset {
		mw.shownPresets = names
		mw.shownPreset = s.Preset

		mw.presetSel.Options = names
		if s.Preset == "" {
			mw.presetSel.ClearSelected()
		} else {
			mw.presetSel.SetSelected(s.Preset)
		}
		mw.presetSel.Refresh()

		if mw.OnPresetsChanged != nil {
			mw.OnPresetsChanged(names, s.Preset)
		}
	}

	mw.remember(s)
}

func (mw *MainWindow) isFocused(obj fyne.Focusable) bool {
	return mw.window.Canvas().Focused() == obj
}

func setEntryText(e *widget.Entry, text string) {
	if e.Text != text {
		e.SetText(text)
	}
}

func (mw *MainWindow) deviceOption(s controller.State) string {
	if s.Device == controller.NoDevice {
		return noneOption
	}
	return midi.Port{Index: s.Device, Name: s.DeviceName}.String()
}

// remember stores the open device and selected preset for the next launch
func (mw *MainWindow) remember(s controller.State) {
	changed := false
	if s.DeviceName != "" && s.DeviceName != mw.cfg.LastDevice {
		mw.cfg.LastDevice = s.DeviceName
		changed = true
	}
	if s.Preset != "" && s.Preset != mw.cfg.LastPreset {
		mw.cfg.LastPreset = s.Preset
		changed = true
	}
	if !changed {
		return
	}
	if err := mw.cfg.Save(); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}
