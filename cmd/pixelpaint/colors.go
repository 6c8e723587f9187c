package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/pixelpaint/internal/palette"
)

type colorsCmd struct {
	*root
	fs     *flag.FlagSet
	plain  bool
	stdout io.Writer
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(cmd)
	fs.BoolVar(&cmd.plain, "plain", false, "omit the ANSI color preview")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	fmt.Fprintln(c.stdout, "available palette colors (* marks the default color, keys 1-9 and 0 select the first ten):")
	defaultIdx := palette.DefaultIndex()
	for idx, entry := range palette.Entries() {
		marker := " "
		if idx == defaultIdx {
			marker = "*"
		}
		hex := palette.Hex(entry.Color)
		if c.plain {
			fmt.Fprintf(c.stdout, "%s %2d: %-8s %s\n", marker, idx, entry.Name, hex)
			continue
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(c.stdout, "%s %2d: %-8s %s %s\n", marker, idx, entry.Name, hex, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
