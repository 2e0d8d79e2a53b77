package gioui

import (
	"io"
	"strings"

	"gioui.org/io/clipboard"
	"github.com/wavedraw/wavedraw/waveedit"
)

const clipboardMime = "application/text"

// ClipboardBridge keeps the clipboard slot of the model in a local store and
// mirrors every copy to the system clipboard, so waves can be pasted between
// editor instances and into text editors.
type ClipboardBridge struct {
	store   waveedit.ClipboardStore
	pending []string
}

func NewClipboardBridge(store waveedit.ClipboardStore) *ClipboardBridge {
	if store == nil {
		store = waveedit.NewMemoryStore()
	}
	return &ClipboardBridge{store: store}
}

func (c *ClipboardBridge) Get(key string) (string, bool) { return c.store.Get(key) }

func (c *ClipboardBridge) Set(key, value string) {
	c.store.Set(key, value)
	if key == waveedit.ClipboardKey {
		c.pending = append(c.pending, value)
	}
}

// receive stores text read from the system clipboard without echoing it back.
func (c *ClipboardBridge) receive(text string) {
	c.store.Set(waveedit.ClipboardKey, text)
}

// flush writes the values copied since the last frame to the system
// clipboard.
func (c *ClipboardBridge) flush(gtx C) {
	for _, v := range c.pending {
		gtx.Execute(clipboard.WriteCmd{Type: clipboardMime, Data: io.NopCloser(strings.NewReader(v))})
	}
	c.pending = c.pending[:0]
}
