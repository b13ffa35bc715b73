// Command vhl renders a highlighted, read-only view of a V source file in
// the terminal.
//
// Usage:
//
//	vhl [-config keywords.yaml] file.v
//
// Up/Down and PgUp/PgDn scroll, `o` toggles the outline pane (with Up/Down
// moving the selection and Enter jumping to it), Ctrl+C copies the current
// line to the clipboard, and Ctrl+Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/fivemoreminix/vhl/buffer"
	"github.com/fivemoreminix/vhl/syntax"
	"github.com/fivemoreminix/vhl/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML keyword-set config")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vhl [-config keywords.yaml] <file.v>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	contents, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var highlighter *syntax.Highlighter
	if lang, ok := syntax.Detect(path); ok {
		cfg := lang.Config
		if *configPath != "" {
			cfg, err = syntax.LoadConfig(*configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
		}
		highlighter, err = syntax.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	// Unknown extensions still get the plain view, just without spans.

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer s.Fini() // Useful for handling panics

	ClipInitialize()

	view := ui.NewView(buffer.NewRopeBuffer(contents), highlighter, &ui.DefaultColorscheme)
	sizex, sizey := s.Size()
	view.SetPos(0, 0)
	view.SetSize(sizex, sizey)

main_loop:
	for {
		s.Clear()
		view.Draw(s)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			sizex, sizey = s.Size()
			view.SetSize(sizex, sizey)
			s.Sync() // Redraw everything
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlQ:
				break main_loop
			case tcell.KeyUp:
				if view.OutlineVisible() {
					view.MoveOutline(-1)
				} else {
					view.MoveCursor(-1)
				}
			case tcell.KeyDown:
				if view.OutlineVisible() {
					view.MoveOutline(1)
				} else {
					view.MoveCursor(1)
				}
			case tcell.KeyPgUp:
				view.Page(-1)
			case tcell.KeyPgDn:
				view.Page(1)
			case tcell.KeyEnter:
				if view.OutlineVisible() {
					view.JumpToSelected()
				}
			case tcell.KeyCtrlC:
				_ = ClipWrite(view.CurrentLine())
			case tcell.KeyRune:
				if ev.Rune() == 'o' {
					view.ToggleOutline()
				}
			}
		}
	}
}
