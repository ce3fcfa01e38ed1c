package controller

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/xy-midi-controller/internal/midi"
	"github.com/PixPMusic/xy-midi-controller/internal/pad"
	"github.com/PixPMusic/xy-midi-controller/internal/preset"
)

type sent struct {
	channel uint8
	x, y    midi.Axis
}

type fakeEmitter struct {
	openErr error
	opened  []int
	closed  int
	sends   []sent
}

func (f *fakeEmitter) Open(index int) (midi.Port, error) {
	// Open always releases the previous destination first
	f.closed++
	if f.openErr != nil {
		return midi.Port{}, f.openErr
	}
	f.opened = append(f.opened, index)
	return midi.Port{Index: index, Name: "port"}, nil
}

func (f *fakeEmitter) Close() { f.closed++ }

func (f *fakeEmitter) SendXY(channel uint8, x, y midi.Axis) {
	f.sends = append(f.sends, sent{channel, x, y})
}

type recorder struct {
	notes   []Notify
	reverts []Field
	changes int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnNotify: func(n Notify) { r.notes = append(r.notes, n) },
		OnRevert: func(f Field) { r.reverts = append(r.reverts, f) },
		OnChange: func(State) { r.changes++ },
	}
}

func newTestController(t *testing.T) (*Controller, *fakeEmitter, *preset.Store, *recorder) {
	t.Helper()
	em := &fakeEmitter{}
	store := preset.Load(filepath.Join(t.TempDir(), "presets.json"))
	rec := &recorder{}
	return New(em, store, rec.hooks()), em, store, rec
}

func TestDispatchDragSends(t *testing.T) {
	c, em, _, rec := newTestController(t)

	c.Dispatch(PointerDown{Pos: pad.Point{X: 0, Y: 0}, Surface: surface})
	c.Dispatch(PointerMove{Pos: pad.Point{X: 400, Y: 250}, Surface: surface})
	c.Dispatch(PointerUp{})
	c.Dispatch(PointerMove{Pos: pad.Point{X: 200, Y: 125}, Surface: surface})

	require.Len(t, em.sends, 2)
	assert.Equal(t, sent{0, midi.Axis{CC: 74, Value: 0}, midi.Axis{CC: 71, Value: 127}}, em.sends[0])
	assert.Equal(t, sent{0, midi.Axis{CC: 74, Value: 127}, midi.Axis{CC: 71, Value: 0}}, em.sends[1])
	assert.Equal(t, 4, rec.changes)
}

func TestDispatchOpenDevice(t *testing.T) {
	c, em, _, rec := newTestController(t)

	c.Dispatch(FieldChanged{Field: FieldDevice, Value: "3"})

	assert.Equal(t, []int{3}, em.opened)
	assert.Equal(t, 3, c.State().Device)
	assert.Equal(t, "port", c.State().DeviceName)
	assert.Empty(t, rec.notes)
}

func TestDispatchOpenDeviceFailure(t *testing.T) {
	c, em, _, rec := newTestController(t)
	em.openErr = errors.New("device busy")

	c.Dispatch(FieldChanged{Field: FieldDevice, Value: "1"})

	assert.Equal(t, NoDevice, c.State().Device)
	require.Len(t, rec.notes, 1)
	assert.Equal(t, "MIDI Error", rec.notes[0].Title)
	assert.Equal(t, []Field{FieldDevice}, rec.reverts)
	assert.Equal(t, 1, rec.changes, "feedback is reported with the original event")
}

func TestDispatchInvalidCCReverts(t *testing.T) {
	c, _, _, rec := newTestController(t)

	c.Dispatch(FieldChanged{Field: FieldXCC, Value: "999"})

	assert.Equal(t, uint8(74), c.State().X.CC)
	assert.Equal(t, []Field{FieldXCC}, rec.reverts)
	require.Len(t, rec.notes, 1)
}

func TestDispatchPresetRoundTrip(t *testing.T) {
	c, em, store, _ := newTestController(t)

	c.Dispatch(FieldChanged{Field: FieldXCC, Value: "20"})
	c.Dispatch(FieldChanged{Field: FieldYCC, Value: "21"})
	c.Dispatch(FieldChanged{Field: FieldChannel, Value: "5"})
	c.Dispatch(PresetAction{Kind: PresetSave, Name: "Sweep"})

	p, ok := store.Get("Sweep")
	require.True(t, ok)
	assert.Equal(t, preset.Preset{XCC: 20, YCC: 21, Channel: 5}, p)

	c.Dispatch(PresetAction{Kind: PresetSelect, Name: preset.DefaultName})
	assert.Equal(t, uint8(74), c.State().X.CC)

	c.Dispatch(PresetAction{Kind: PresetSelect, Name: "Sweep"})
	s := c.State()
	assert.Equal(t, uint8(20), s.X.CC)
	assert.Equal(t, uint8(21), s.Y.CC)
	assert.Equal(t, uint8(4), s.Channel)
	assert.Empty(t, em.sends)

	reloaded := preset.Load(store.Path())
	p, ok = reloaded.Get("Sweep")
	require.True(t, ok)
	assert.Equal(t, preset.Preset{XCC: 20, YCC: 21, Channel: 5}, p)
}

func TestDispatchDeleteDefaultRejected(t *testing.T) {
	c, _, store, rec := newTestController(t)

	c.Dispatch(PresetAction{Kind: PresetDelete, Name: preset.DefaultName})

	_, ok := store.Get(preset.DefaultName)
	assert.True(t, ok)
	require.Len(t, rec.notes, 1)
	assert.Equal(t, SeverityWarning, rec.notes[0].Severity)
}

func TestDispatchDeleteMissingReportsStoreError(t *testing.T) {
	c, _, _, rec := newTestController(t)

	c.Dispatch(PresetAction{Kind: PresetDelete, Name: "ghost"})

	require.Len(t, rec.notes, 1)
	assert.Equal(t, "Preset Error", rec.notes[0].Title)
}

func TestDispatchSendsOnCurrentChannel(t *testing.T) {
	c, em, _, _ := newTestController(t)

	c.Dispatch(FieldChanged{Field: FieldChannel, Value: "16"})
	c.Dispatch(PointerDown{Pos: pad.Point{X: 200, Y: 125}, Surface: surface})

	require.Len(t, em.sends, 1)
	assert.Equal(t, uint8(15), em.sends[0].channel)
	assert.Equal(t, uint8(63), em.sends[0].x.Value)
	assert.Equal(t, uint8(63), em.sends[0].y.Value)
}
