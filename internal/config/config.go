package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/pixelpaint/internal/theme"
)

// Load policies for images whose size differs from the working canvas.
const (
	LoadResize = "resize"
	LoadReject = "reject"
)

// Notify holds notification settings.
type Notify struct {
	Save  bool
	Load  bool
	Copy  bool
	Error bool
}

// Config holds the application configuration.
type Config struct {
	Theme        string
	Width        int
	Height       int
	CellSize     int
	File         string
	Color        string
	ShowGrid     bool
	HistoryLimit int
	LoadPolicy   string
	Notify       Notify
	Themes       map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Width:      640,
		Height:     480,
		CellSize:   20,
		File:       "pixelart.png",
		ShowGrid:   true,
		LoadPolicy: LoadResize,
		Themes:     make(map[string]*theme.Theme),
	}
}

// Validate reports settings that cannot produce a usable editor.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit cannot be negative")
	}
	switch c.LoadPolicy {
	case LoadResize, LoadReject:
	default:
		return fmt.Errorf("unknown load_policy %q", c.LoadPolicy)
	}
	return nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "cell_size = %d\n", c.CellSize)
	if c.File != "" {
		fmt.Fprintf(&sb, "file = %s\n", c.File)
	}
	if c.Color != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.Color)
	}
	fmt.Fprintf(&sb, "show_grid = %v\n", c.ShowGrid)
	fmt.Fprintf(&sb, "history_limit = %d\n", c.HistoryLimit)
	fmt.Fprintf(&sb, "load_policy = %s\n", c.LoadPolicy)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "error = %v\n", c.Notify.Error)
	sb.WriteString("\n")

	var names []string
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
