package wavedraw

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WaveFile is the on-disk representation of a drawn waveform.
type WaveFile struct {
	Name    string `json:",omitempty" yaml:",omitempty"`
	Samples []int  `yaml:",flow"`
}

// ReadWave reads a wave file, trying JSON first and YAML after that.
func ReadWave(r io.Reader) (Wave, string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Wave{}, "", fmt.Errorf("could not read wave: %w", err)
	}
	var file WaveFile
	if errJSON := json.Unmarshal(b, &file); errJSON != nil {
		file = WaveFile{}
		if errYaml := yaml.Unmarshal(b, &file); errYaml != nil {
			return Wave{}, "", fmt.Errorf("could not unmarshal wave: %v / %w", errJSON, errYaml)
		}
	}
	if len(file.Samples) != WaveLength {
		return Wave{}, "", fmt.Errorf("wave has %d samples, expected %d", len(file.Samples), WaveLength)
	}
	return MakeWave(file.Samples), file.Name, nil
}

// WriteWave writes the wave in JSON if path has the .json extension and in
// YAML otherwise.
func WriteWave(w io.Writer, path, name string, wave Wave) error {
	file := WaveFile{Name: name, Samples: wave[:]}
	var contents []byte
	var err error
	if filepath.Ext(path) == ".json" {
		contents, err = json.Marshal(file)
	} else {
		contents, err = yaml.Marshal(file)
	}
	if err != nil {
		return fmt.Errorf("could not marshal wave: %w", err)
	}
	if _, err := w.Write(contents); err != nil {
		return fmt.Errorf("could not write wave: %w", err)
	}
	return nil
}
