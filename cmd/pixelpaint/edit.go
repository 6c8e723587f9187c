package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/example/pixelpaint/internal/editor"
	"github.com/example/pixelpaint/internal/palette"
	"github.com/example/pixelpaint/internal/ui"
)

type editCmd struct {
	*root
	fs   *flag.FlagSet
	open bool
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	cmd := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.BoolVar(&cmd.open, "open", false, "load -file into the canvas on start up when it exists")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

// prepare builds the editor, optionally seeded from the configured file.
func (e *editCmd) prepare() (*editor.Editor, error) {
	ed, err := e.root.newEditor()
	if err != nil {
		return nil, err
	}
	if !e.open {
		return ed, nil
	}
	if _, err := os.Stat(e.root.file); errors.Is(err, fs.ErrNotExist) {
		return ed, nil
	}
	if err := ed.Load(e.root.file); err != nil {
		return nil, err
	}
	return ed, nil
}

func (e *editCmd) Run() error {
	ed, err := e.prepare()
	if err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}
	w := ui.New(ed,
		ui.WithTheme(e.root.activeTheme),
		ui.WithPath(e.root.file),
		ui.WithNotifier(e.root.notifier),
		ui.WithColorIndex(palette.IndexOf(ed.State().Color)),
	)
	w.Run()
	return nil
}
