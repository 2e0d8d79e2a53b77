package cmd_test

import (
	"path/filepath"
	"testing"

	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/cmd"
	"github.com/wavedraw/wavedraw/waveedit"
)

func TestFileDocumentSavesCommits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bass.yml")
	doc, wave, err := cmd.OpenFileDocument(path)
	if err != nil {
		t.Fatalf("OpenFileDocument: %v", err)
	}
	if wave != (wavedraw.Wave{}) || doc.Name != "bass" {
		t.Fatalf("new document = %v %q", wave, doc.Name)
	}
	m := waveedit.NewModel(wave, doc, nil)
	m.ShiftUp().Do()
	if doc.Changed() {
		t.Error("document should be saved after a commit")
	}
	_, saved, err := cmd.OpenFileDocument(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if saved != m.Wave() {
		t.Errorf("saved wave = %v, want %v", saved, m.Wave())
	}
}
