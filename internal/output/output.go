// Package output centralizes user-facing terminal output: a small color
// palette plus JSON/quiet switches shared by every command.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

type Options struct {
	JSON    bool
	Quiet   bool
	Verbose bool
	NoColor bool
}

type Output struct {
	JSON    bool
	Quiet   bool
	Verbose bool

	green *color.Color
	red   *color.Color
	gray  *color.Color
	bold  *color.Color
}

func New(opts Options) *Output {
	if opts.NoColor {
		color.NoColor = true
	}
	return &Output{
		JSON:    opts.JSON,
		Quiet:   opts.Quiet,
		Verbose: opts.Verbose,
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		gray:    color.New(color.FgHiBlack),
		bold:    color.New(color.Bold),
	}
}

func (o *Output) Green(s string) string { return o.green.Sprint(s) }
func (o *Output) Red(s string) string   { return o.red.Sprint(s) }
func (o *Output) Gray(s string) string  { return o.gray.Sprint(s) }
func (o *Output) Bold(s string) string  { return o.bold.Sprint(s) }

// Print writes a plain line unless JSON or quiet mode suppresses it.
func (o *Output) Print(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(os.Stdout, msg)
}

// Success writes a green confirmation line.
func (o *Output) Success(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(os.Stdout, o.Green(msg))
}

// Detail writes a gray line only in verbose mode.
func (o *Output) Detail(msg string) {
	if o.JSON || !o.Verbose {
		return
	}
	fmt.Fprintln(os.Stdout, o.Gray(msg))
}

// Error always writes to stderr, regardless of mode.
func (o *Output) Error(msg string) {
	fmt.Fprintln(os.Stderr, o.Red(msg))
}

// EmitJSON writes v as indented JSON to stdout.
func (o *Output) EmitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
