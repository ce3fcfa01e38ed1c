package window

import (
	"fyne.io/fyne/v2/widget"
)

// ============ COMMIT ENTRY WIDGET ============

// commitEntry reports its text on Enter and when it loses focus
type commitEntry struct {
	widget.Entry
	onCommit func(string)
}

func newCommitEntry(onCommit func(string)) *commitEntry {
	e := &commitEntry{onCommit: onCommit}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(s string) { e.commit() }
	return e
}

func (e *commitEntry) FocusLost() {
	e.Entry.FocusLost()
	e.commit()
}

func (e *commitEntry) commit() {
	if e.onCommit != nil {
		e.onCommit(e.Text)
	}
}
