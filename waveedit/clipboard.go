package waveedit

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wavedraw/wavedraw"
	"gopkg.in/yaml.v3"
)

type (
	// ClipboardStore is a key-value store holding the clipboard slot.
	ClipboardStore interface {
		Get(key string) (value string, ok bool)
		Set(key, value string)
	}

	// clipboardRecord is the serialized form of a floating selection. Older
	// versions stored just the samples as a bare array.
	clipboardRecord struct {
		CopiedData       []int `json:"copiedData" yaml:"copiedData"`
		DestinationStart int   `json:"destinationStart" yaml:"destinationStart"`
		DestinationEnd   int   `json:"destinationEnd" yaml:"destinationEnd"`
		AmplitudeOffset  int   `json:"amplitudeOffset" yaml:"amplitudeOffset"`
	}

	// partialRecord detects which fields are present in a pasted record.
	partialRecord struct {
		CopiedData       []int `yaml:"copiedData"`
		DestinationStart *int  `yaml:"destinationStart"`
		DestinationEnd   *int  `yaml:"destinationEnd"`
		AmplitudeOffset  *int  `yaml:"amplitudeOffset"`
	}

	copyAction  Model
	pasteAction Model
)

// ClipboardKey is the key of the clipboard slot in the ClipboardStore.
const ClipboardKey = "wavedraw.clipboard"

var errEmptyClipboard = errors.New("no samples")

// Copy returns an Action that copies the selection, or the whole wave if
// nothing is selected, to the clipboard. Copying cancels the selection.
func (m *Model) Copy() Action { return MakeAction((*copyAction)(m)) }

func (m *copyAction) Enabled() bool { return !(*Model)(m).busy() }
func (m *copyAction) Do() {
	rec := clipboardRecord{CopiedData: m.wave[:], DestinationStart: 0, DestinationEnd: wavedraw.WaveLength}
	if s, ok := m.sel.(hasSelection); ok && m.tool == ToolSelection {
		f := s.ensureFloating(m.wave)
		rec = clipboardRecord{CopiedData: f.data, DestinationStart: f.dest.Start, DestinationEnd: f.dest.End, AmplitudeOffset: f.offset}
	}
	b, err := json.Marshal(rec)
	if err != nil {
		(*Model)(m).alert(Error, "Could not copy the wave: %v", err)
		return
	}
	m.clipboard.Set(ClipboardKey, string(b))
	(*Model)(m).ClearSelection()
}

// Paste returns an Action that pastes the clipboard. In the selection tool
// the pasted samples become a floating selection; otherwise they are stamped
// into the wave right away.
func (m *Model) Paste() Action { return MakeAction((*pasteAction)(m)) }

func (m *pasteAction) Enabled() bool { return !(*Model)(m).busy() }
func (m *pasteAction) Do() {
	s, ok := m.clipboard.Get(ClipboardKey)
	if !ok {
		return
	}
	rec, err := decodeClipboard([]byte(s))
	if err != nil {
		(*Model)(m).alert(Warning, "Could not paste: %v", err)
		return
	}
	dest := wavedraw.Range{Start: rec.DestinationStart, End: rec.DestinationEnd}
	if m.tool != ToolSelection {
		stamp(&m.wave, rec.CopiedData, dest, rec.AmplitudeOffset)
		(*Model)(m).publish()
		(*Model)(m).checkpoint()
		(*Model)(m).render()
		return
	}
	(*Model)(m).commitFloating()
	bounds := dest.Clamp()
	if bounds.Empty() {
		m.sel = noSelection{}
		(*Model)(m).render()
		return
	}
	f := &floatingSelection{data: rec.CopiedData, dest: dest, offset: rec.AmplitudeOffset, base: m.wave}
	m.sel = hasSelection{rng: bounds, floating: f}
	m.wave = f.composite(f.dest, f.offset)
	(*Model)(m).publish()
	(*Model)(m).render()
}

// decodeClipboard parses a clipboard record, accepting the legacy bare array
// and filling missing fields with the legacy defaults.
func decodeClipboard(b []byte) (clipboardRecord, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return clipboardRecord{}, fmt.Errorf("malformed clipboard: %w", err)
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = *node.Content[0]
	}
	rec := clipboardRecord{DestinationEnd: wavedraw.WaveLength}
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&rec.CopiedData); err != nil {
			return clipboardRecord{}, fmt.Errorf("malformed clipboard samples: %w", err)
		}
	case yaml.MappingNode:
		var p partialRecord
		if err := node.Decode(&p); err != nil {
			return clipboardRecord{}, fmt.Errorf("malformed clipboard record: %w", err)
		}
		rec.CopiedData = p.CopiedData
		if p.DestinationStart != nil {
			rec.DestinationStart = *p.DestinationStart
		}
		if p.DestinationEnd != nil {
			rec.DestinationEnd = *p.DestinationEnd
		}
		if p.AmplitudeOffset != nil {
			rec.AmplitudeOffset = *p.AmplitudeOffset
		}
	default:
		return clipboardRecord{}, errors.New("clipboard does not contain a wave")
	}
	if len(rec.CopiedData) == 0 {
		return clipboardRecord{}, errEmptyClipboard
	}
	return rec, nil
}
