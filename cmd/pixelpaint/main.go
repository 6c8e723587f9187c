package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/example/pixelpaint/internal/config"
	"github.com/example/pixelpaint/internal/editor"
	"github.com/example/pixelpaint/internal/notify"
	"github.com/example/pixelpaint/internal/palette"
	"github.com/example/pixelpaint/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	notifier *notify.Notifier
	config   *config.Config

	themeName    string
	width        int
	height       int
	cellSize     int
	file         string
	color        string
	showGrid     bool
	historyLimit int
	loadPolicy   string
	saveAlerts   bool
	loadAlerts   bool
	copyAlerts   bool
	errorAlerts  bool

	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg, notify.New(notify.DefaultPreferences()))
}

// newRootWithConfig registers the global flags. Flag defaults come from cfg
// so the precedence is flag > config > built-in default.
func newRootWithConfig(cfg *config.Config, n *notify.Notifier) *root {
	r := &root{
		fs:       flag.NewFlagSet("pixelpaint", flag.ExitOnError),
		program:  "pixelpaint",
		notifier: n,
		config:   cfg,
	}
	r.fs.StringVar(&r.themeName, "theme", cfg.Theme, "color theme to use (default, dark or a theme file)")
	r.fs.IntVar(&r.width, "width", cfg.Width, "canvas width in pixels")
	r.fs.IntVar(&r.height, "height", cfg.Height, "canvas height in pixels")
	r.fs.IntVar(&r.cellSize, "cell-size", cfg.CellSize, "edge length of one grid cell in pixels")
	r.fs.StringVar(&r.file, "file", cfg.File, "PNG file used by save and load")
	r.fs.StringVar(&r.color, "color", cfg.Color, "initial drawing color (palette name, color name or #RRGGBB)")
	r.fs.BoolVar(&r.showGrid, "grid", cfg.ShowGrid, "show the cell grid")
	r.fs.IntVar(&r.historyLimit, "history-limit", cfg.HistoryLimit, "maximum undo depth, 0 for unlimited")
	r.fs.StringVar(&r.loadPolicy, "load-policy", cfg.LoadPolicy, "what to do when a loaded image has a different size (resize, reject)")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving")
	r.fs.BoolVar(&r.loadAlerts, "notify-load", cfg.Notify.Load, "show a desktop notification after loading")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.errorAlerts, "notify-error", cfg.Notify.Error, "show a desktop notification when a file or clipboard action fails")
	r.fs.Usage = usageFunc(r)
	return r
}

// effectiveConfig merges the parsed flags back into a copy of the config.
func (r *root) effectiveConfig() *config.Config {
	cfg := *r.config
	cfg.Theme = r.themeName
	cfg.Width = r.width
	cfg.Height = r.height
	cfg.CellSize = r.cellSize
	cfg.File = r.file
	cfg.Color = r.color
	cfg.ShowGrid = r.showGrid
	cfg.HistoryLimit = r.historyLimit
	cfg.LoadPolicy = strings.ToLower(strings.TrimSpace(r.loadPolicy))
	cfg.Notify = config.Notify{Save: r.saveAlerts, Load: r.loadAlerts, Copy: r.copyAlerts, Error: r.errorAlerts}
	return &cfg
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if err := r.effectiveConfig().Validate(); err != nil {
		return err
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventLoad, r.loadAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventError, r.errorAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := "edit"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "export":
		cmd, err = parseExportCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

// drawColor resolves the -color flag, falling back to the palette default.
func (r *root) drawColor() (color.RGBA, error) {
	if strings.TrimSpace(r.color) == "" {
		return palette.At(palette.DefaultIndex()), nil
	}
	c, err := palette.Parse(r.color)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("-color: %w", err)
	}
	return c, nil
}

func (r *root) newEditor(extra ...editor.Option) (*editor.Editor, error) {
	col, err := r.drawColor()
	if err != nil {
		return nil, err
	}
	th := r.activeTheme
	if th == nil {
		th = theme.Default()
	}
	policy := editor.LoadResize
	if r.effectiveConfig().LoadPolicy == config.LoadReject {
		policy = editor.LoadReject
	}
	opts := []editor.Option{
		editor.WithCellSize(r.cellSize),
		editor.WithColor(col),
		editor.WithGrid(r.showGrid),
		editor.WithHistoryLimit(r.historyLimit),
		editor.WithLoadPolicy(policy),
		editor.WithCheckerColors(th.CheckerLight, th.CheckerDark),
		editor.WithGridColor(th.GridLine),
	}
	return editor.New(r.width, r.height, append(opts, extra...)...)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
