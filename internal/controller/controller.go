package controller

import (
	"log"

	"github.com/PixPMusic/xy-midi-controller/internal/midi"
	"github.com/PixPMusic/xy-midi-controller/internal/preset"
)

// Emitter is the MIDI destination the controller drives
type Emitter interface {
	Open(index int) (midi.Port, error)
	Close()
	SendXY(channel uint8, x, y midi.Axis)
}

// PresetStore is the preset collection the controller edits
type PresetStore interface {
	Get(name string) (preset.Preset, bool)
	Save(name string, xCC, yCC, channel int) error
	Delete(name string) error
}

// Hooks connect the controller to the UI. Any of them may be nil.
type Hooks struct {
	OnNotify func(Notify)
	OnRevert func(Field)
	OnChange func(State)
}

// Controller holds the state and executes the commands Reduce returns.
// It expects every Dispatch on one goroutine.
type Controller struct {
	state   State
	emitter Emitter
	store   PresetStore
	hooks   Hooks
}

// New creates a controller starting from NewState
func New(emitter Emitter, store PresetStore, hooks Hooks) *Controller {
	return &Controller{
		state:   NewState(),
		emitter: emitter,
		store:   store,
		hooks:   hooks,
	}
}

// State returns a copy of the current state
func (c *Controller) State() State {
	return c.state
}

// Dispatch reduces ev, runs the resulting commands and any feedback
// events they produce, then reports the new state once
func (c *Controller) Dispatch(ev Event) {
	queue := []Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		res := Reduce(c.state, next, c.store.Get)
		c.state = res.State
		for _, cmd := range res.Commands {
			if fb := c.execute(cmd); fb != nil {
				queue = append(queue, fb)
			}
		}
	}

	if c.hooks.OnChange != nil {
		c.hooks.OnChange(c.state)
	}
}

func (c *Controller) execute(cmd Command) Event {
	switch cmd := cmd.(type) {
	case SendXY:
		c.emitter.SendXY(cmd.Channel, cmd.X, cmd.Y)

	case OpenDevice:
		port, err := c.emitter.Open(cmd.Index)
		if err != nil {
			log.Printf("Failed to open MIDI device %d: %v", cmd.Index, err)
			return DeviceOpenFailed{Index: cmd.Index, Err: err}
		}
		log.Printf("Connected to %s", port)
		return DeviceOpened{Port: port}

	case CloseDevice:
		c.emitter.Close()

	case SavePreset:
		if err := c.store.Save(cmd.Name, cmd.XCC, cmd.YCC, cmd.Channel); err != nil {
			log.Printf("Failed to save preset %q: %v", cmd.Name, err)
			return PresetStoreFailed{Kind: PresetSave, Err: err}
		}

	case DeletePreset:
		if err := c.store.Delete(cmd.Name); err != nil {
			log.Printf("Failed to delete preset %q: %v", cmd.Name, err)
			return PresetStoreFailed{Kind: PresetDelete, Err: err}
		}

	case Notify:
		if c.hooks.OnNotify != nil {
			c.hooks.OnNotify(cmd)
		}

	case Revert:
		if c.hooks.OnRevert != nil {
			c.hooks.OnRevert(cmd.Field)
		}
	}
	return nil
}
