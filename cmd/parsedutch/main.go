package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Version is the version printed by the version command.
const Version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Config     string        `help:"Configuration file path" default:"parsedutch.yaml"`
	Verbose    bool          `help:"Enable verbose output" short:"v"`
	Quiet      bool          `help:"Suppress output" short:"q"`
	Parse      ParseCmd      `cmd:"" help:"Parse Dutch text into an NLCST tree"`
	Check      CheckCmd      `cmd:"" help:"Check that text parses into a valid, lossless tree"`
	Regenerate RegenerateCmd `cmd:"" help:"Regenerate JSON tree fixtures"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintf(ctx.Stdout, "parsedutch %s\n", Version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("parsedutch"),
		kong.Description("Dutch natural language parser producing NLCST trees."),
		kong.UsageOnError(),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
