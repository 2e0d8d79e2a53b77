// Package cmd contains the parts shared by the wavedraw programs.
package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/wavedraw/wavedraw"
)

// FileDocument is a waveedit.Document backed by a wave file. Every committed
// wave is written to the file; published intermediate waves only mark the
// document changed.
type FileDocument struct {
	Path    string
	Name    string
	changed bool
}

// OpenFileDocument reads the wave in path. A missing file gives an empty wave
// and is created on the first commit.
func OpenFileDocument(path string) (*FileDocument, wavedraw.Wave, error) {
	d := &FileDocument{Path: path, Name: nameFromPath(path)}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return d, wavedraw.Wave{}, nil
	}
	if err != nil {
		return nil, wavedraw.Wave{}, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()
	wave, name, err := wavedraw.ReadWave(f)
	if err != nil {
		return nil, wavedraw.Wave{}, fmt.Errorf("could not read %s: %w", path, err)
	}
	if name != "" {
		d.Name = name
	}
	return d, wave, nil
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

func (d *FileDocument) PublishWave(wavedraw.Wave) { d.changed = true }

func (d *FileDocument) CommitWave(wave wavedraw.Wave) {
	if err := d.Save(wave); err != nil {
		log.Printf("could not save wave: %v", err)
	}
}

// Changed reports whether a wave has been published since the last save.
func (d *FileDocument) Changed() bool { return d.changed }

// Save writes the wave to the file, replacing it atomically.
func (d *FileDocument) Save(wave wavedraw.Wave) error {
	var buf bytes.Buffer
	if err := wavedraw.WriteWave(&buf, d.Path, d.Name, wave); err != nil {
		return err
	}
	if dir := filepath.Dir(d.Path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}
	tmp := d.Path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, d.Path); err != nil {
		return fmt.Errorf("could not replace %s: %w", d.Path, err)
	}
	d.changed = false
	return nil
}
