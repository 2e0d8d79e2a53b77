package waveedit_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/waveedit"
)

type modelFuzzState struct {
	model *waveedit.Model
}

func (s *modelFuzzState) Iterate(yield func(string, func(p string, t *testing.T)) bool, seed int) {
	x := float64(seed%700 - 30)
	y := float64((seed/7)%540 - 25)
	// Pointer
	yield("PointerDown", func(p string, t *testing.T) { s.model.PointerDown(x, y, seed%3 == 0) })
	yield("PointerMove", func(p string, t *testing.T) { s.model.PointerMove(x, y) })
	yield("PointerUp", func(p string, t *testing.T) { s.model.PointerUp() })
	// Keys
	yield("Escape", func(p string, t *testing.T) { s.model.KeyPress(waveedit.KeyEscape) })
	yield("Enter", func(p string, t *testing.T) { s.model.KeyPress(waveedit.KeyEnter) })
	// Tools
	for tool := range waveedit.NumTools {
		s.IterateAction("Tool"+tool.String(), s.model.SetToolAction(tool), yield, seed)
	}
	// Bools and ints
	s.IterateBool("StretchMode", s.model.StretchMode().Bool(), yield, seed)
	s.IterateInt("GeneratorPolicy", s.model.GeneratorPolicy().Int(), yield, seed)
	// Actions
	s.IterateAction("FlipHorizontally", s.model.FlipHorizontally(), yield, seed)
	s.IterateAction("FlipAroundZero", s.model.FlipVertically(true), yield, seed)
	s.IterateAction("FlipAroundMiddle", s.model.FlipVertically(false), yield, seed)
	s.IterateAction("ShiftUp", s.model.ShiftUp(), yield, seed)
	s.IterateAction("ShiftDown", s.model.ShiftDown(), yield, seed)
	s.IterateAction("Randomize", s.model.Randomize(), yield, seed)
	s.IterateAction("SelectAll", s.model.SelectAll(), yield, seed)
	s.IterateAction("Copy", s.model.Copy(), yield, seed)
	s.IterateAction("Paste", s.model.Paste(), yield, seed)
	s.IterateAction("Undo", s.model.History().Undo(), yield, seed)
	s.IterateAction("Redo", s.model.History().Redo(), yield, seed)
}

func (s *modelFuzzState) IterateInt(name string, i waveedit.Int, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	r := i.Range()
	yield(name+".Set", func(p string, t *testing.T) {
		i.Set(seed%(r.Max-r.Min+10) - 5 + r.Min)
	})
	yield(name+".Value", func(p string, t *testing.T) {
		if v := i.Value(); v < r.Min || v > r.Max {
			t.Errorf("Path: %s %s value out of range [%d,%d]: %d", p, name, r.Min, r.Max, v)
		}
	})
}

func (s *modelFuzzState) IterateBool(name string, b waveedit.Bool, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		b.Set(seed%2 == 0)
	})
	yield(name+".Toggle", func(p string, t *testing.T) {
		b.Toggle()
	})
}

func (s *modelFuzzState) IterateAction(name string, a waveedit.Action, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Do", func(p string, t *testing.T) {
		a.Do()
	})
}

func (s *modelFuzzState) check(p string, t *testing.T) {
	w := s.model.Wave()
	for i, v := range w {
		if v < wavedraw.MinSample || v > wavedraw.MaxSample {
			t.Errorf("Path: %s sample %d out of range: %d", p, i, v)
		}
	}
	if r := s.model.Selection(); r.Start < 0 || r.Start > r.End || r.End > wavedraw.WaveLength {
		t.Errorf("Path: %s invalid selection %v", p, r)
	}
	h := s.model.History()
	if h.Len() < 1 || h.Len() > 32 || h.Cursor() < 0 || h.Cursor() >= h.Len() {
		t.Errorf("Path: %s invalid history: len %d cursor %d", p, h.Len(), h.Cursor())
	}
	if !s.model.Pressed() {
		switch st := s.model.SelectionState(); st {
		case waveedit.MakingSelection, waveedit.MovingSelectionStart, waveedit.MovingSelectionEnd,
			waveedit.MovingFloatingSelection, waveedit.StretchingFromStart, waveedit.StretchingFromEnd:
			t.Errorf("Path: %s drag state %v without a pressed pointer", p, st)
		}
	}
	if s.model.HasFloating() && s.model.Tool() != waveedit.ToolSelection {
		t.Errorf("Path: %s floating selection outside the selection tool", p)
	}
}

func FuzzModel(f *testing.F) {
	f.Add([]byte{0})
	f.Add([]byte{2, 132, 5, 34, 6, 200, 3, 4, 134, 1, 6, 99, 4})
	f.Add([]byte{14, 2, 90, 2, 170, 1, 4, 2, 250, 3, 4, 64, 62, 66, 2, 40, 4, 2, 130, 3, 4})
	f.Add(bytes.Repeat([]byte{2, 6, 4, 56, 58}, 40))
	f.Fuzz(func(t *testing.T, slice []byte) {
		reader := bytes.NewReader(slice)
		model := waveedit.NewModel(wavedraw.Wave{}, nil, nil)
		model.SetSeed(1)
		state := modelFuzzState{model: model}
		count := 0
		state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
			count++
			return true
		}, 0)
		totalPath := ""
		for m, err := binary.ReadVarint(reader); err == nil; m, err = binary.ReadVarint(reader) {
			seed := int(m)
			if seed < 0 {
				seed = -seed
			}
			index := seed % count
			state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
				if index == 0 {
					totalPath += n + ". "
					f(totalPath, t)
				}
				index--
				return index > 0
			}, seed)
			state.check(totalPath, t)
		}
	})
}
