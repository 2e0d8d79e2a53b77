package gioui

import (
	"gioui.org/layout"
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/wavedraw/wavedraw/waveedit"
)

type (
	Toolbar struct {
		toolBtns       [waveedit.NumTools]widget.Clickable
		stretchBtn     widget.Clickable
		flipHBtn       widget.Clickable
		flipZeroBtn    widget.Clickable
		flipMiddleBtn  widget.Clickable
		shiftUpBtn     widget.Clickable
		shiftDownBtn   widget.Clickable
		randomizeBtn   widget.Clickable
		generatorBtn   widget.Clickable
		undoBtn        widget.Clickable
		redoBtn        widget.Clickable
		copyBtn        widget.Clickable
		pasteBtn       widget.Clickable
		toolHints      [waveedit.NumTools]string
		stretchHint    string
		flipHHint      string
		flipZeroHint   string
		flipMiddleHint string
		shiftUpHint    string
		shiftDownHint  string
		randomizeHint  string
		generatorHint  string
		undoHint       string
		redoHint       string
		copyHint       string
		pasteHint      string
	}
)

var toolIcons = [waveedit.NumTools][]byte{
	icons.ContentCreate,
	icons.ImageTimeline,
	icons.ContentGesture,
	icons.ContentSelectAll,
}

var toolActions = [waveedit.NumTools]string{"ToolStandard", "ToolLine", "ToolCurve", "ToolSelection"}

func NewToolbar() *Toolbar {
	ret := &Toolbar{}
	for i, a := range toolActions {
		ret.toolHints[i] = makeHint(toolTitle(waveedit.Tool(i)), " (%s)", a)
	}
	ret.stretchHint = makeHint("Stretch selection edges", " (%s)", "StretchModeToggle")
	ret.flipHHint = makeHint("Flip horizontally", " (%s)", "FlipHorizontally")
	ret.flipZeroHint = makeHint("Flip around zero", " (%s)", "FlipAroundZero")
	ret.flipMiddleHint = makeHint("Flip around the middle", " (%s)", "FlipAroundMiddle")
	ret.shiftUpHint = makeHint("Shift up", " (%s)", "ShiftUp")
	ret.shiftDownHint = makeHint("Shift down", " (%s)", "ShiftDown")
	ret.randomizeHint = makeHint("Randomize", " (%s)", "Randomize")
	ret.generatorHint = makeHint("Next generator", " (%s)", "GeneratorNext")
	ret.undoHint = makeHint("Undo", " (%s)", "Undo")
	ret.redoHint = makeHint("Redo", " (%s)", "Redo")
	ret.copyHint = makeHint("Copy", " (%s)", "Copy")
	ret.pasteHint = makeHint("Paste", " (%s)", "Paste")
	return ret
}

func (tb *Toolbar) Layout(gtx C, e *Editor) D {
	m := e.Model
	for i := range tb.toolBtns {
		for tb.toolBtns[i].Clicked(gtx) {
			m.SetToolAction(waveedit.Tool(i)).Do()
		}
	}
	for tb.stretchBtn.Clicked(gtx) {
		m.StretchMode().Bool().Toggle()
	}
	for tb.flipHBtn.Clicked(gtx) {
		m.FlipHorizontally().Do()
	}
	for tb.flipZeroBtn.Clicked(gtx) {
		m.FlipVertically(true).Do()
	}
	for tb.flipMiddleBtn.Clicked(gtx) {
		m.FlipVertically(false).Do()
	}
	for tb.shiftUpBtn.Clicked(gtx) {
		m.ShiftUp().Do()
	}
	for tb.shiftDownBtn.Clicked(gtx) {
		m.ShiftDown().Do()
	}
	for tb.randomizeBtn.Clicked(gtx) {
		m.Randomize().Do()
	}
	for tb.generatorBtn.Clicked(gtx) {
		p := m.GeneratorPolicy().Int()
		if !p.Add(1) {
			p.Set(p.Range().Min)
		}
	}
	for tb.undoBtn.Clicked(gtx) {
		m.History().Undo().Do()
	}
	for tb.redoBtn.Clicked(gtx) {
		m.History().Redo().Do()
	}
	for tb.copyBtn.Clicked(gtx) {
		m.Copy().Do()
	}
	for tb.pasteBtn.Clicked(gtx) {
		e.requestPaste(gtx)
	}

	th := e.Theme
	var children []layout.FlexChild
	for i := range tb.toolBtns {
		t := waveedit.Tool(i)
		btn := ToggleIconButton(th, &tb.toolBtns[i], toolIcons[i], m.Tool() == t, m.SetToolAction(t).Enabled(), tb.toolHints[i])
		children = append(children, layout.Rigid(btn.Layout))
	}
	stretch := m.StretchMode()
	children = append(children,
		layout.Rigid(ToggleIconButton(th, &tb.stretchBtn, icons.ImageTransform, stretch.Value(), stretch.Enabled(), tb.stretchHint).Layout),
		layout.Rigid(IconButton(th, &tb.flipHBtn, icons.ActionSwapHoriz, m.FlipHorizontally().Enabled(), tb.flipHHint).Layout),
		layout.Rigid(IconButton(th, &tb.flipZeroBtn, icons.ActionSwapVert, m.FlipVertically(true).Enabled(), tb.flipZeroHint).Layout),
		layout.Rigid(IconButton(th, &tb.flipMiddleBtn, icons.ImageFlip, m.FlipVertically(false).Enabled(), tb.flipMiddleHint).Layout),
		layout.Rigid(IconButton(th, &tb.shiftUpBtn, icons.HardwareKeyboardArrowUp, m.ShiftUp().Enabled(), tb.shiftUpHint).Layout),
		layout.Rigid(IconButton(th, &tb.shiftDownBtn, icons.HardwareKeyboardArrowDown, m.ShiftDown().Enabled(), tb.shiftDownHint).Layout),
		layout.Rigid(IconButton(th, &tb.randomizeBtn, icons.AVShuffle, m.Randomize().Enabled(), tb.randomizeHint).Layout),
		layout.Rigid(IconButton(th, &tb.generatorBtn, icons.ImageTune, true, tb.generatorHint).Layout),
		layout.Rigid(IconButton(th, &tb.undoBtn, icons.ContentUndo, m.History().Undo().Enabled(), tb.undoHint).Layout),
		layout.Rigid(IconButton(th, &tb.redoBtn, icons.ContentRedo, m.History().Redo().Enabled(), tb.redoHint).Layout),
		layout.Rigid(IconButton(th, &tb.copyBtn, icons.ContentContentCopy, m.Copy().Enabled(), tb.copyHint).Layout),
		layout.Rigid(IconButton(th, &tb.pasteBtn, icons.ContentContentPaste, m.Paste().Enabled(), tb.pasteHint).Layout),
	)
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}
