package gioui

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"time"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/transfer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/wavedraw/wavedraw/waveedit"
)

type (
	// Editor is the window of the wave editor: a toolbar, the canvas and a
	// status line around a model.
	Editor struct {
		Theme   *material.Theme
		Canvas  *Canvas
		Toolbar *Toolbar
		Alerts  *AlertsState
		Title   string

		clipboard   *ClipboardBridge
		preferences Preferences

		*waveedit.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

// NewEditor returns an editor of the model. The clipboard has to be the store
// the model was created with, so that copies reach the system clipboard.
func NewEditor(model *waveedit.Model, clipboard *ClipboardBridge, preferences Preferences) *Editor {
	e := &Editor{
		Theme:       NewTheme(),
		Canvas:      NewCanvas(model),
		Toolbar:     NewToolbar(),
		Alerts:      &AlertsState{},
		Title:       "Wavedraw",
		clipboard:   clipboard,
		preferences: preferences,
		Model:       model,
	}
	e.Canvas.EdgeMargin = preferences.EdgeMargin
	model.StretchMode().Bool().Set(preferences.Stretching)
	model.GeneratorPolicy().Int().Set(preferences.Generator)
	if preferences.YmlError != nil {
		e.Alerts.Add(waveedit.Alert{
			Priority: waveedit.Warning,
			Message:  fmt.Sprintf("Could not read preferences: %v", preferences.YmlError),
		}, time.Now())
	}
	return e
}

// TitleFromPath returns the window title for a wave file.
func TitleFromPath(path string) string {
	if path == "" {
		return "Wavedraw"
	}
	return fmt.Sprintf("Wavedraw - %s", filepath.Base(path))
}

// Main runs the window until it is closed.
func (e *Editor) Main() error {
	w := new(app.Window)
	w.Option(app.Title(e.Title), app.Size(e.preferences.WindowSize()))
	if e.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	var ops op.Ops
	for {
		switch ev := w.Event().(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			e.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (e *Editor) Layout(gtx C) D {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, e.Theme.Palette.Bg)
	event.Op(gtx.Ops, e)
	// the top level input handler: keys nobody else wants and clipboard
	// contents requested by paste
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper},
			transfer.TargetFilter{Target: e, Type: clipboardMime},
		)
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case key.Event:
			e.KeyEvent(ev, gtx)
		case transfer.DataEvent:
			e.paste(ev)
		}
	}
	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return e.Toolbar.Layout(gtx, e) }),
		layout.Flexed(1, e.Canvas.Layout),
		layout.Rigid(func(gtx C) D { return layoutStatus(gtx, e.Theme, e.Model) }),
	)
	now := gtx.Now
	for _, a := range e.TakeAlerts() {
		e.Alerts.Add(a, now)
	}
	e.Alerts.Layout(gtx, e.Theme)
	e.clipboard.flush(gtx)
	return dims
}

func (e *Editor) requestPaste(gtx C) {
	gtx.Execute(clipboard.ReadCmd{Tag: e})
}

func (e *Editor) paste(ev transfer.DataEvent) {
	r := ev.Open()
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		e.Alerts.Add(waveedit.Alert{Priority: waveedit.Error, Message: fmt.Sprintf("Could not read the clipboard: %v", err)}, time.Now())
		return
	}
	e.clipboard.receive(string(b))
	e.Paste().Do()
}
