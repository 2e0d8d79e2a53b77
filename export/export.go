// Package export renders waves as source code or data files, so that a drawn
// wave can be dropped into a synth or a demo.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/Masterminds/sprig"
	"github.com/wavedraw/wavedraw"
)

type (
	Exporter struct {
		Template *template.Template
	}

	// Macros is the data available to the templates.
	Macros struct {
		Name       string // sanitized, usable as a file or identifier name
		Package    string
		Samples    []int
		Rows       [][]int // samples in rows of RowLength
		Min, Max   int
		Length     int
		SampleBits int
	}
)

// RowLength is the number of samples per row in Macros.Rows.
const RowLength = 16

//go:embed templates/*.tmpl
var defaultTemplates embed.FS

var extensions = map[string]string{
	"go":   ".go",
	"c":    ".h",
	"asm":  ".asm",
	"json": ".json",
}

// New returns an exporter using the built-in templates.
func New() (*Exporter, error) {
	return newExporter(defaultTemplates, "templates/*.tmpl")
}

// NewFromTemplates returns an exporter using the *.tmpl files in dir. A
// template named foo.tmpl provides the format foo.
func NewFromTemplates(dir string) (*Exporter, error) {
	return newExporter(os.DirFS(dir), "*.tmpl")
}

func newExporter(fsys fs.FS, pattern string) (*Exporter, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("could not parse export templates: %w", err)
	}
	return &Exporter{Template: tmpl}, nil
}

// Formats lists the formats the exporter knows, sorted.
func (e *Exporter) Formats() []string {
	var ret []string
	for _, t := range e.Template.Templates() {
		if name, ok := strings.CutSuffix(t.Name(), ".tmpl"); ok {
			ret = append(ret, name)
		}
	}
	sort.Strings(ret)
	return ret
}

// Extension returns the file extension, including the dot, for a format.
// Unknown formats use the format name as the extension.
func Extension(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return "." + format
}

// Export renders the wave in the given format.
func (e *Exporter) Export(format, pkg, name string, wave wavedraw.Wave) ([]byte, error) {
	t := e.Template.Lookup(format + ".tmpl")
	if t == nil {
		return nil, fmt.Errorf("unknown export format %q, expected one of %s", format, strings.Join(e.Formats(), ", "))
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, NewMacros(pkg, name, wave)); err != nil {
		return nil, fmt.Errorf("could not execute template %q: %w", t.Name(), err)
	}
	return buf.Bytes(), nil
}

func NewMacros(pkg, name string, wave wavedraw.Wave) *Macros {
	samples := slices.Clone(wave[:])
	var rows [][]int
	for c := range slices.Chunk(samples, RowLength) {
		rows = append(rows, c)
	}
	if pkg == "" {
		pkg = "main"
	}
	return &Macros{
		Name:       Sanitize(name),
		Package:    pkg,
		Samples:    samples,
		Rows:       rows,
		Min:        slices.Min(samples),
		Max:        slices.Max(samples),
		Length:     wavedraw.WaveLength,
		SampleBits: 8,
	}
}

// Sanitize turns a wave name into a lower case snake_case identifier. An empty
// name becomes "wave".
func Sanitize(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if underscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			underscore = false
			b.WriteRune(r)
			continue
		}
		underscore = true
	}
	s := b.String()
	if s == "" {
		return "wave"
	}
	if unicode.IsDigit(rune(s[0])) {
		s = "wave_" + s
	}
	return s
}
