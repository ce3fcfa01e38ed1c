// Package controller turns pointer and form events into controller state
// changes and the MIDI and preset side effects they require.
//
// Reduce is pure: it computes the next State and a list of Commands without
// doing any I/O. Controller executes the commands and feeds failures back in
// as events.
package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PixPMusic/xy-midi-controller/internal/midi"
	"github.com/PixPMusic/xy-midi-controller/internal/pad"
	"github.com/PixPMusic/xy-midi-controller/internal/preset"
)

// NoDevice marks State.Device when no destination is open
const NoDevice = -1

// State is everything the interaction controller owns
type State struct {
	X, Y       midi.Axis
	Channel    uint8 // 0-15, shown as 1-16
	Device     int
	DeviceName string
	Dragging   bool
	Preset     string // selected preset, empty for none
}

// NewState starts from the default preset with both axes centred
func NewState() State {
	d := preset.Default()
	return State{
		X:       midi.Axis{CC: uint8(d.XCC), Value: 64},
		Y:       midi.Axis{CC: uint8(d.YCC), Value: 64},
		Channel: uint8(d.Channel - 1),
		Device:  NoDevice,
		Preset:  preset.DefaultName,
	}
}

// Lookup resolves a preset by name
type Lookup func(name string) (preset.Preset, bool)

// Result is the outcome of reducing one event
type Result struct {
	State    State
	Commands []Command
}

// Reduce computes the next state for ev
func Reduce(s State, ev Event, lookup Lookup) Result {
	switch e := ev.(type) {
	case PointerDown:
		s.Dragging = true
		return moveTo(s, e.Pos, e.Surface)

	case PointerMove:
		if !s.Dragging {
			return Result{State: s}
		}
		return moveTo(s, e.Pos, e.Surface)

	case PointerUp:
		s.Dragging = false
		return Result{State: s}

	case FieldChanged:
		return reduceField(s, e)

	case PresetAction:
		return reducePreset(s, e, lookup)

	case DeviceOpened:
		s.Device = e.Port.Index
		s.DeviceName = e.Port.Name
		return Result{State: s}

	case DeviceOpenFailed:
		s.Device = NoDevice
		s.DeviceName = ""
		return Result{State: s, Commands: []Command{
			Notify{Severity: SeverityError, Title: "MIDI Error", Message: fmt.Sprintf("Failed to open MIDI device: %v", e.Err)},
			Revert{Field: FieldDevice},
		}}

	case PresetStoreFailed:
		return Result{State: s, Commands: []Command{
			Notify{Severity: SeverityError, Title: "Preset Error", Message: e.Err.Error()},
		}}
	}

	return Result{State: s}
}

func moveTo(s State, pos pad.Point, surface pad.Size) Result {
	s.X.Value, s.Y.Value = pad.Map(pos, surface)
	return Result{State: s, Commands: []Command{
		SendXY{Channel: s.Channel, X: s.X, Y: s.Y},
	}}
}

func reduceField(s State, e FieldChanged) Result {
	reject := func(title, msg string) Result {
		return Result{State: s, Commands: []Command{
			Notify{Severity: SeverityError, Title: title, Message: msg},
			Revert{Field: e.Field},
		}}
	}

	switch e.Field {
	case FieldXCC, FieldYCC:
		cc, err := strconv.Atoi(strings.TrimSpace(e.Value))
		if err != nil {
			return reject("Invalid CC", "Please enter a valid number")
		}
		if cc < 0 || cc > 127 {
			return reject("Invalid CC", "CC values must be between 0 and 127")
		}
		if e.Field == FieldXCC {
			s.X.CC = uint8(cc)
		} else {
			s.Y.CC = uint8(cc)
		}

	case FieldChannel:
		ch, err := strconv.Atoi(strings.TrimSpace(e.Value))
		if err != nil || ch < 1 || ch > 16 {
			return reject("Invalid Channel", "MIDI channel must be between 1 and 16")
		}
		s.Channel = uint8(ch - 1)

	case FieldDevice:
		if strings.TrimSpace(e.Value) == "" {
			s.Device = NoDevice
			s.DeviceName = ""
			return Result{State: s, Commands: []Command{CloseDevice{}}}
		}
		index, err := strconv.Atoi(strings.TrimSpace(e.Value))
		if err != nil || index < 0 {
			return reject("MIDI Error", fmt.Sprintf("Invalid MIDI device %q", e.Value))
		}
		return Result{State: s, Commands: []Command{OpenDevice{Index: index}}}
	}

	return Result{State: s}
}

func reducePreset(s State, e PresetAction, lookup Lookup) Result {
	warn := func(title, msg string) Result {
		return Result{State: s, Commands: []Command{
			Notify{Severity: SeverityWarning, Title: title, Message: msg},
		}}
	}

	switch e.Kind {
	case PresetSelect:
		if e.Name == "" {
			s.Preset = ""
			return Result{State: s}
		}
		p, ok := lookup(e.Name)
		if !ok {
			return warn("Preset Not Found", fmt.Sprintf("No preset named %q", e.Name))
		}
		if err := p.Validate(); err != nil {
			return Result{State: s, Commands: []Command{
				Notify{Severity: SeverityError, Title: "Invalid Preset", Message: err.Error()},
			}}
		}
		s.X.CC = uint8(p.XCC)
		s.Y.CC = uint8(p.YCC)
		s.Channel = uint8(p.Channel - 1)
		s.Preset = e.Name
		return Result{State: s}

	case PresetSave:
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return Result{State: s, Commands: []Command{
				Notify{Severity: SeverityError, Title: "Invalid Name", Message: "Please enter a preset name"},
			}}
		}
		s.Preset = name
		return Result{State: s, Commands: []Command{
			SavePreset{Name: name, XCC: int(s.X.CC), YCC: int(s.Y.CC), Channel: int(s.Channel) + 1},
		}}

	case PresetDelete:
		switch e.Name {
		case "":
			return warn("No Preset Selected", "Select a preset to delete")
		case preset.DefaultName:
			return warn("Cannot Delete", "The default preset cannot be deleted")
		}
		if s.Preset == e.Name {
			s.Preset = ""
		}
		return Result{State: s, Commands: []Command{DeletePreset{Name: e.Name}}}
	}

	return Result{State: s}
}
