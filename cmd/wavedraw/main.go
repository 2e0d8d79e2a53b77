package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/cmd"
	"github.com/wavedraw/wavedraw/version"
	"github.com/wavedraw/wavedraw/waveedit"
	"github.com/wavedraw/wavedraw/waveedit/gioui"
)

var versionFlag = flag.Bool("v", false, "print version")
var seed = flag.Uint64("seed", 0, "seed the random generators, for reproducible randomize")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [wave.yml|wave.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}
	preferences := gioui.MakePreferences()

	var document waveedit.Document
	var initial wavedraw.Wave
	title := gioui.TitleFromPath("")
	if a := flag.Args(); len(a) > 0 {
		doc, wave, err := cmd.OpenFileDocument(a[0])
		if err != nil {
			log.Fatal(err)
		}
		document, initial = doc, wave
		title = gioui.TitleFromPath(a[0])
	}

	var store waveedit.ClipboardStore = waveedit.NewMemoryStore()
	if path, ok := preferences.ClipboardPath(); ok {
		store = waveedit.NewFileStore(path)
	}
	clipboard := gioui.NewClipboardBridge(store)
	model := waveedit.NewModel(initial, document, clipboard)
	if isFlagPassed("seed") {
		model.SetSeed(*seed)
	}
	editor := gioui.NewEditor(model, clipboard, preferences)
	editor.Title = title

	go func() {
		if err := editor.Main(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
