package midi

import (
	"fmt"
	"log"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Axis is one controller number and its current value
type Axis struct {
	CC    uint8
	Value uint8
}

// Output owns at most one open MIDI destination
type Output struct {
	mu      sync.Mutex
	manager *Manager
	port    drivers.Out
	send    func(midi.Message) error
}

// NewOutput creates an output with no destination open
func NewOutput(manager *Manager) *Output {
	return &Output{manager: manager}
}

// Open closes the current destination and opens the output at index.
// On failure no destination is left open.
func (o *Output) Open(index int) (Port, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.closeLocked()

	out, err := o.manager.findOutPort(index)
	if err != nil {
		return Port{}, err
	}

	send, err := midi.SendTo(out)
	if err != nil {
		if out.IsOpen() {
			_ = out.Close()
		}
		return Port{}, fmt.Errorf("failed to open %s: %w", out.String(), err)
	}

	o.port = out
	o.send = send
	return Port{Index: out.Number(), Name: out.String()}, nil
}

// Current returns the open destination, if any
func (o *Output) Current() (Port, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.port == nil {
		return Port{}, false
	}
	return Port{Index: o.port.Number(), Name: o.port.String()}, true
}

// Close releases the open destination. It is safe to call repeatedly.
func (o *Output) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closeLocked()
}

func (o *Output) closeLocked() {
	if o.port == nil {
		return
	}
	if err := o.port.Close(); err != nil {
		log.Printf("Failed to close %s: %v", o.port.String(), err)
	}
	o.port = nil
	o.send = nil
}

// SendCC sends one Control Change message. Without an open destination it
// does nothing.
func (o *Output) SendCC(channel, cc, value uint8) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.send == nil {
		return nil
	}
	if err := o.send(ControlChange(channel, cc, value)); err != nil {
		return fmt.Errorf("send CC %d on %s: %w", cc, o.port.String(), err)
	}
	return nil
}

// SendXY sends the X then the Y controller. Each send stands alone and a
// failure is only logged.
func (o *Output) SendXY(channel uint8, x, y Axis) {
	for _, a := range [2]Axis{x, y} {
		if err := o.SendCC(channel, a.CC, a.Value); err != nil {
			log.Printf("MIDI send error: %v", err)
		}
	}
}
