package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/export"
)

func sawWave() wavedraw.Wave {
	var w wavedraw.Wave
	for i := range w {
		w[i] = i%49 - 24
	}
	return w
}

func TestFormats(t *testing.T) {
	e, err := export.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := e.Formats(), []string{"asm", "c", "go", "json"}; !slices.Equal(got, want) {
		t.Errorf("Formats = %v, want %v", got, want)
	}
}

func TestExport(t *testing.T) {
	e, err := export.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		format   string
		contains []string
	}{
		{"go", []string{"package waves", "var SawWave = [64]int8{", "-24, -23, -22"}},
		{"c", []string{"#define SAW_WAVE_LENGTH 64", "static const signed char saw_wave[SAW_WAVE_LENGTH]"}},
		{"asm", []string{"SAW_WAVE_LENGTH equ 64", "saw_wave:", "db -24, -23"}},
		{"json", []string{`"name":"saw_wave"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := e.Export(tt.format, "waves", "Saw wave", sawWave())
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(string(out), s) {
					t.Errorf("output does not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestExportJSONIsAWaveFile(t *testing.T) {
	e, err := export.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Export("json", "", "saw", sawWave())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	w, name, err := wavedraw.ReadWave(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("ReadWave: %v", err)
	}
	if w != sawWave() || name != "saw" {
		t.Errorf("ReadWave = %v %q", w, name)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	e, err := export.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := e.Export("cobol", "", "saw", sawWave()); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestNewFromTemplates(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "csv.tmpl"), []byte(`{{join ";" .Samples}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := export.NewFromTemplates(dir)
	if err != nil {
		t.Fatalf("NewFromTemplates: %v", err)
	}
	out, err := e.Export("csv", "", "", wavedraw.Wave{1, 2})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(string(out), "1;2;0;") {
		t.Errorf("output = %q", out)
	}
	if export.Extension("csv") != ".csv" || export.Extension("c") != ".h" {
		t.Error("wrong extensions")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Saw wave", "saw_wave"},
		{"  --bass!! 2 ", "bass_2"},
		{"", "wave"},
		{"3osc", "wave_3osc"},
	}
	for _, tt := range tests {
		if got := export.Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
