package controller

import "github.com/PixPMusic/xy-midi-controller/internal/midi"

// Command is a side effect requested by Reduce
type Command interface {
	commandMarker()
}

// SendXY sends both axis values on the channel
type SendXY struct {
	Channel uint8
	X, Y    midi.Axis
}

func (SendXY) commandMarker() {}

// OpenDevice replaces the current destination with the output at Index
type OpenDevice struct {
	Index int
}

func (OpenDevice) commandMarker() {}

// CloseDevice releases the current destination
type CloseDevice struct{}

func (CloseDevice) commandMarker() {}

// SavePreset writes a preset to the store; Channel is 1-16
type SavePreset struct {
	Name              string
	XCC, YCC, Channel int
}

func (SavePreset) commandMarker() {}

// DeletePreset removes a preset from the store
type DeletePreset struct {
	Name string
}

func (DeletePreset) commandMarker() {}

// Severity of a user notification
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// Notify asks the UI to show a blocking message
type Notify struct {
	Severity Severity
	Title    string
	Message  string
}

func (Notify) commandMarker() {}

// Revert asks the UI to reset a field to the current state
type Revert struct {
	Field Field
}

func (Revert) commandMarker() {}
