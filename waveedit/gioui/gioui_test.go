package gioui

import (
	"strings"
	"testing"

	"gioui.org/io/key"
	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/waveedit"
)

func TestDefaultKeyBindings(t *testing.T) {
	var kbs []KeyBinding
	if err := decodeKeyBindings(defaultKeyBindings, &kbs); err != nil {
		t.Fatalf("default keybindings: %v", err)
	}
	tests := []struct {
		event  key.Event
		action string
	}{
		{key.Event{Name: "Z", Modifiers: key.ModShortcut, State: key.Press}, "Undo"},
		{key.Event{Name: key.NameEscape, State: key.Press}, "Cancel"},
		{key.Event{Name: "4", State: key.Press}, "ToolSelection"},
	}
	for _, tt := range tests {
		if got := keyBindingMap[tt.event]; got != tt.action {
			t.Errorf("binding of %v = %q, want %q", tt.event, got, tt.action)
		}
	}
}

func TestKeyBindingsRejectUnknownFields(t *testing.T) {
	var kbs []KeyBinding
	if err := decodeKeyBindings([]byte(`- {key: "A", action: "Undo", hyper: true}`), &kbs); err == nil {
		t.Error("unknown field should be rejected")
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := loadDefaultPreferences()
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		t.Errorf("window size = %dx%d", p.Window.Width, p.Window.Height)
	}
	if p.EdgeMargin != 6 || p.Generator != waveedit.RandomGenerator || p.Stretching {
		t.Errorf("unexpected defaults %+v", p)
	}
	if p.Clipboard == "" {
		t.Error("default clipboard file is empty")
	}
}

func TestStatusText(t *testing.T) {
	m := waveedit.NewModel(wavedraw.Wave{}, nil, nil)
	if s := statusText(m); !strings.HasPrefix(s, "Standard tool") || !strings.Contains(s, "Generator: Random") {
		t.Errorf("status = %q", s)
	}
	m.SetTool(waveedit.ToolSelection)
	m.StretchMode().Bool().Set(true)
	m.SelectAll().Do()
	s := statusText(m)
	for _, want := range []string{"Selection tool", "Stretching", "Selected 0..63"} {
		if !strings.Contains(s, want) {
			t.Errorf("status %q does not contain %q", s, want)
		}
	}
}

func TestClipboardBridgeQueuesCopies(t *testing.T) {
	b := NewClipboardBridge(nil)
	m := waveedit.NewModel(wavedraw.Wave{1, 2, 3}, nil, b)
	m.Copy().Do()
	if len(b.pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(b.pending))
	}
	if v, ok := b.Get(waveedit.ClipboardKey); !ok || v != b.pending[0] {
		t.Error("the store and the system clipboard disagree")
	}
	b.receive("[5]")
	if len(b.pending) != 1 {
		t.Error("received text should not be written back")
	}
}
