package gioui

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gioui.org/io/key"
	"github.com/wavedraw/wavedraw/waveedit"
	"gopkg.in/yaml.v3"
)

type (
	KeyAction string

	KeyBinding struct {
		Key                                        string
		Shortcut, Ctrl, Command, Shift, Alt, Super bool
		Action                                     string
	}
)

var keyBindingMap = map[key.Event]string{}
var keyActionMap = map[KeyAction]string{} // holds an informative string of the first key bound to an action

//go:embed keybindings.yml
var defaultKeyBindings []byte

func init() {
	var keyBindings, userKeybindings []KeyBinding
	if err := decodeKeyBindings(defaultKeyBindings, &keyBindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	if err := ReadCustomConfig("keybindings.yml", &userKeybindings); err == nil {
		keyBindings = append(keyBindings, userKeybindings...)
	}
	bindKeys(keyBindings)
}

func decodeKeyBindings(b []byte, target *[]KeyBinding) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(target)
}

// ReadCustomConfig decodes the user's version of a config file strictly.
func ReadCustomConfig(filename string, target *[]KeyBinding) error {
	path, err := ConfigPath(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeKeyBindings(b, target)
}

func bindKeys(keyBindings []KeyBinding) {
	for _, kb := range keyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Command {
			mods |= key.ModCommand
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		if kb.Super {
			mods |= key.ModSuper
		}

		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		action, ok := keyBindingMap[keyEvent] // if this key has been previously bound, remove it from the hint map
		if ok {
			delete(keyActionMap, KeyAction(action))
		}
		if kb.Action == "" { // unbind
			delete(keyBindingMap, keyEvent)
		} else { // bind
			keyBindingMap[keyEvent] = kb.Action
			// last binding of the some action wins for displaying the hint
			modString := strings.Replace(mods.String(), "-", "+", -1)
			text := kb.Key
			if modString != "" {
				text = modString + "+" + text
			}
			keyActionMap[KeyAction(kb.Action)] = text
		}
	}
}

func makeHint(hint, format, action string) string {
	if keyActionMap[KeyAction(action)] != "" {
		return hint + fmt.Sprintf(format, keyActionMap[KeyAction(action)])
	}
	return hint
}

// KeyEvent runs the action bound to the key, if any.
func (e *Editor) KeyEvent(ev key.Event, gtx C) {
	if ev.State != key.Press {
		return
	}
	action, ok := keyBindingMap[ev]
	if !ok {
		return
	}
	switch action {
	// Tools
	case "ToolStandard":
		e.SetToolAction(waveedit.ToolStandard).Do()
	case "ToolLine":
		e.SetToolAction(waveedit.ToolLine).Do()
	case "ToolCurve":
		e.SetToolAction(waveedit.ToolCurve).Do()
	case "ToolSelection":
		e.SetToolAction(waveedit.ToolSelection).Do()
	// Keys of the editing state machine
	case "Cancel":
		e.HandleEvent(waveedit.Event{Kind: waveedit.KeyPress, Key: waveedit.KeyEscape})
	case "Commit":
		e.HandleEvent(waveedit.Event{Kind: waveedit.KeyPress, Key: waveedit.KeyEnter})
	case "SelectAll":
		e.HandleEvent(waveedit.Event{Kind: waveedit.KeyPress, Key: waveedit.KeySelectAll})
	case "Undo":
		e.HandleEvent(waveedit.Event{Kind: waveedit.KeyPress, Key: waveedit.KeyUndo})
	case "Redo":
		e.HandleEvent(waveedit.Event{Kind: waveedit.KeyPress, Key: waveedit.KeyRedo})
	case "Copy":
		e.HandleEvent(waveedit.Event{Kind: waveedit.KeyPress, Key: waveedit.KeyCopy})
	case "Paste":
		e.requestPaste(gtx)
	// Actions
	case "FlipHorizontally":
		e.FlipHorizontally().Do()
	case "FlipAroundZero":
		e.FlipVertically(true).Do()
	case "FlipAroundMiddle":
		e.FlipVertically(false).Do()
	case "ShiftUp":
		e.ShiftUp().Do()
	case "ShiftDown":
		e.ShiftDown().Do()
	case "Randomize":
		e.Randomize().Do()
	// Booleans
	case "StretchModeToggle":
		e.StretchMode().Bool().Toggle()
	// Integers
	case "GeneratorNext":
		e.GeneratorPolicy().Int().Add(1)
	case "GeneratorPrevious":
		e.GeneratorPolicy().Int().Add(-1)
	}
}
