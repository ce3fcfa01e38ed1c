package midi

import (
	"errors"
	"fmt"
	"log"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var (
	// ErrNoDriver is returned when no MIDI driver has been registered
	ErrNoDriver = errors.New("no MIDI driver registered")

	// ErrPortNotFound is returned when an output index does not exist
	ErrPortNotFound = errors.New("output port not found")
)

// Port describes an available MIDI output
type Port struct {
	Index int
	Name  string
}

// String formats the port the way the device selector shows it
func (p Port) String() string {
	return fmt.Sprintf("%d: %s", p.Index, p.Name)
}

// Manager handles MIDI output discovery
type Manager struct {
	driver drivers.Driver
}

// NewManager creates a manager over the registered driver
func NewManager() *Manager {
	return &Manager{driver: drivers.Get()}
}

// NewManagerWithDriver creates a manager over a specific driver
func NewManagerWithDriver(d drivers.Driver) *Manager {
	return &Manager{driver: d}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	if m.driver == nil {
		return
	}
	if err := m.driver.Close(); err != nil {
		log.Printf("Failed to close MIDI driver: %v", err)
	}
}

// ListOutPorts returns the available MIDI output ports
func (m *Manager) ListOutPorts() ([]Port, error) {
	if m.driver == nil {
		return nil, ErrNoDriver
	}

	outs, err := m.driver.Outs()
	if err != nil {
		return nil, fmt.Errorf("failed to list output ports: %w", err)
	}

	ports := make([]Port, 0, len(outs))
	for _, out := range outs {
		ports = append(ports, Port{Index: out.Number(), Name: out.String()})
	}
	return ports, nil
}

func (m *Manager) findOutPort(index int) (drivers.Out, error) {
	if m.driver == nil {
		return nil, ErrNoDriver
	}

	outs, err := m.driver.Outs()
	if err != nil {
		return nil, fmt.Errorf("failed to list output ports: %w", err)
	}
	for _, out := range outs {
		if out.Number() == index {
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrPortNotFound, index)
}

// ControlChange builds the 3-byte CC message 0xB0|channel, cc, value
func ControlChange(channel, cc, value uint8) midi.Message {
	return midi.ControlChange(channel&0x0F, cc&0x7F, value&0x7F)
}
