// Command genbadges renders the taskbar badge glyphs 1.ico..9.ico and 9+.ico.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/alecthomas/kingpin.v2"

	"wgpt/internal/taskbar"
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Renders taskbar badge glyph icons.")

	var (
		outDir = app.Flag("out", "Directory the .ico files are written to.").Short('o').Default(filepath.Join("icons", "badges")).String()
		sizes  = app.Flag("size", "Pixel size of an embedded image; repeat for more.").Short('s').Default("16", "32").Ints()
		fill   = app.Flag("fill", "Disc colour as #rrggbb.").Default("#e53935").String()
		ink    = app.Flag("ink", "Numeral colour as #rrggbb.").Default("#ffffff").String()
	)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		app.Fatalf("%s, try --help", err)
	}

	style, err := parseStyle(*fill, *ink)
	if err != nil {
		app.Fatalf("%s", err)
	}
	for _, s := range *sizes {
		if s < 8 || s > 256 {
			app.Fatalf("size %d out of range 8..256", s)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		app.Fatalf("create %s: %s", *outDir, err)
	}

	for _, name := range glyphNames() {
		data, err := renderGlyphICO(name, *sizes, style)
		if err != nil {
			app.Fatalf("render %s: %s", name, err)
		}
		path := filepath.Join(*outDir, name+taskbar.GlyphExt)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			app.Fatalf("write %s: %s", path, err)
		}
		fmt.Println("wrote", path)
	}
}

// glyphNames lists every glyph the badge controller can ask for
func glyphNames() []string {
	names := make([]string, 0, taskbar.MaxDigit+1)
	for n := 1; n <= taskbar.MaxDigit+1; n++ {
		names = append(names, taskbar.SelectGlyph(n).Name)
	}
	return names
}
