package waveedit

import "github.com/wavedraw/wavedraw"

const maxHistory = 32

// history is a list of wave snapshots, most recent first, with a cursor
// pointing at the snapshot matching the current state. Entries before the
// cursor are the redo branch; storing a new snapshot discards them for good.
type history struct {
	log    []wavedraw.Wave
	cursor int
}

func newHistory(initial wavedraw.Wave) history {
	return history{log: []wavedraw.Wave{initial}}
}

// store records w unless it equals the entry at the cursor. It reports
// whether a new entry was added.
func (h *history) store(w wavedraw.Wave) bool {
	if h.cursor < len(h.log) && h.log[h.cursor] == w {
		return false
	}
	h.log = h.log[h.cursor:]
	h.cursor = 0
	h.log = append([]wavedraw.Wave{w}, h.log...)
	if len(h.log) > maxHistory {
		h.log = h.log[:maxHistory]
	}
	return true
}

func (h *history) canUndo() bool { return h.cursor < len(h.log)-1 }
func (h *history) canRedo() bool { return h.cursor > 0 }

func (h *history) undo() (wavedraw.Wave, bool) {
	if !h.canUndo() {
		return wavedraw.Wave{}, false
	}
	h.cursor++
	return h.log[h.cursor], true
}

func (h *history) redo() (wavedraw.Wave, bool) {
	if !h.canRedo() {
		return wavedraw.Wave{}, false
	}
	h.cursor--
	return h.log[h.cursor], true
}

// History returns the History view of the model, containing methods to
// manipulate the undo/redo history.
func (m *Model) History() *HistoryModel { return (*HistoryModel)(m) }

type HistoryModel Model

// Len returns the number of snapshots in the history.
func (m *HistoryModel) Len() int { return len(m.history.log) }

// Cursor returns the position of the current state in the history; 0 means
// there is nothing to redo.
func (m *HistoryModel) Cursor() int { return m.history.cursor }

// Checkpoint stores the current wave in the history, unless it is identical
// to the current history entry.
func (m *HistoryModel) Checkpoint() { (*Model)(m).checkpoint() }

// Undo returns an Action to undo the last checkpoint.
func (m *HistoryModel) Undo() Action { return MakeAction((*historyUndo)(m)) }

type historyUndo HistoryModel

func (m *historyUndo) Enabled() bool {
	return !(*Model)(m).busy() && (m.history.canUndo() || (*Model)(m).floating() != nil)
}
func (m *historyUndo) Do() {
	(*Model)(m).commitFloating()
	if w, ok := m.history.undo(); ok {
		(*Model)(m).restoreHistory(w)
	}
}

// Redo returns an Action to redo the last undone checkpoint.
func (m *HistoryModel) Redo() Action { return MakeAction((*historyRedo)(m)) }

type historyRedo HistoryModel

func (m *historyRedo) Enabled() bool { return !(*Model)(m).busy() && m.history.canRedo() }
func (m *historyRedo) Do() {
	(*Model)(m).commitFloating()
	if w, ok := m.history.redo(); ok {
		(*Model)(m).restoreHistory(w)
	}
}

func (m *Model) restoreHistory(w wavedraw.Wave) {
	m.wave = w
	m.document.CommitWave(m.wave)
	m.render()
}
