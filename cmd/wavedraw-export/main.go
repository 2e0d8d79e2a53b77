package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/export"
	"github.com/wavedraw/wavedraw/version"
)

func main() {
	format := flag.String("f", "go", "Output format. The built-in formats are go, c, asm and json; -t adds more.")
	pkg := flag.String("p", "main", "Package name of the generated Go file.")
	name := flag.String("n", "", "Name of the wave in the output. Defaults to the name in the wave file, or the file name.")
	outPath := flag.String("o", "", "Directory or filename where to write the output. By default, the output is placed next to the wave file.")
	stdout := flag.Bool("s", false, "Do not write files; write to standard output instead.")
	safe := flag.Bool("n-overwrite", false, "Never overwrite files; give an error if a file would be overwritten.")
	tmplDir := flag.String("t", "", "Use the *.tmpl templates in this directory instead of the built-in templates.")
	help := flag.Bool("h", false, "Show help.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	var exporter *export.Exporter
	var err error
	if *tmplDir != "" {
		exporter, err = export.NewFromTemplates(*tmplDir)
	} else {
		exporter, err = export.New()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating exporter: %v\n", err)
		os.Exit(1)
	}
	output := func(filename string, contents []byte) error {
		if *stdout {
			fmt.Print(string(contents))
			return nil
		}
		dir, base := filepath.Split(filename)
		if *outPath != "" {
			if info, err := os.Stat(*outPath); err == nil && info.IsDir() {
				dir = *outPath
			} else {
				outdir, outname := filepath.Split(*outPath)
				if outdir != "" {
					dir = outdir
				}
				if outname != "" {
					base = outname
				}
			}
		}
		base = strings.TrimSuffix(base, filepath.Ext(base)) + export.Extension(*format)
		f := filepath.Join(dir, base)
		if original, err := os.ReadFile(f); err == nil {
			if bytes.Equal(original, contents) {
				return nil
			}
			if *safe {
				return fmt.Errorf("file %v would be overwritten", f)
			}
		}
		if dir != "" {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("could not create output directory %v: %w", dir, err)
			}
		}
		if err := os.WriteFile(f, contents, 0o644); err != nil {
			return fmt.Errorf("could not write file %v: %w", f, err)
		}
		return nil
	}
	process := func(filename string) error {
		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("could not open file %v: %w", filename, err)
		}
		defer file.Close()
		wave, waveName, err := wavedraw.ReadWave(file)
		if err != nil {
			return fmt.Errorf("could not read file %v: %w", filename, err)
		}
		switch {
		case *name != "":
			waveName = *name
		case waveName == "":
			base := filepath.Base(filename)
			waveName = strings.TrimSuffix(base, filepath.Ext(base))
		}
		contents, err := exporter.Export(*format, *pkg, waveName, wave)
		if err != nil {
			return err
		}
		return output(filename, contents)
	}
	retval := 0
	for _, param := range flag.Args() {
		if err := process(param); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Exports drawn waves as source code. Usage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
