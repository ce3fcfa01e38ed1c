package controller

import (
	"github.com/PixPMusic/xy-midi-controller/internal/midi"
	"github.com/PixPMusic/xy-midi-controller/internal/pad"
)

// Event is an input to Reduce
type Event interface {
	eventMarker()
}

// PointerDown starts a drag and maps the press point
type PointerDown struct {
	Pos     pad.Point
	Surface pad.Size
}

func (PointerDown) eventMarker() {}

// PointerMove maps the pointer while dragging
type PointerMove struct {
	Pos     pad.Point
	Surface pad.Size
}

func (PointerMove) eventMarker() {}

// PointerUp ends a drag
type PointerUp struct{}

func (PointerUp) eventMarker() {}

// Field identifies an editable setting
type Field int

const (
	FieldXCC Field = iota
	FieldYCC
	FieldChannel
	FieldDevice
)

func (f Field) String() string {
	switch f {
	case FieldXCC:
		return "X CC"
	case FieldYCC:
		return "Y CC"
	case FieldChannel:
		return "channel"
	case FieldDevice:
		return "device"
	default:
		return "unknown"
	}
}

// FieldChanged carries the raw text of an edited setting. For FieldDevice
// the value is the output port index, or empty for none.
type FieldChanged struct {
	Field Field
	Value string
}

func (FieldChanged) eventMarker() {}

// PresetKind is the preset operation requested by the user
type PresetKind int

const (
	PresetSelect PresetKind = iota
	PresetSave
	PresetDelete
)

// PresetAction selects, saves or deletes the named preset. Delete with an
// empty name means nothing is selected.
type PresetAction struct {
	Kind PresetKind
	Name string
}

func (PresetAction) eventMarker() {}

// DeviceOpened is fed back once an output is open
type DeviceOpened struct {
	Port midi.Port
}

func (DeviceOpened) eventMarker() {}

// DeviceOpenFailed is fed back when opening an output fails
type DeviceOpenFailed struct {
	Index int
	Err   error
}

func (DeviceOpenFailed) eventMarker() {}

// PresetStoreFailed is fed back when the store rejects a change or the
// preset file cannot be written
type PresetStoreFailed struct {
	Kind PresetKind
	Err  error
}

func (PresetStoreFailed) eventMarker() {}
