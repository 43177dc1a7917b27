package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/shibukawa/parsedutch"
	"github.com/shibukawa/parsedutch/fixture"
	"github.com/shibukawa/parsedutch/mdtext"
	"github.com/shibukawa/parsedutch/nlcst"
	"github.com/shibukawa/parsedutch/vfile"
)

// loadParser loads the configuration and builds a parser from it. --verbose
// and --quiet override the configured log level.
func loadParser(ctx *Context, opts ...parsedutch.Option) (*parsedutch.Parser, *parsedutch.Config, error) {
	config, err := parsedutch.LoadConfig(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch {
	case ctx.Verbose:
		config.Log.Level = "debug"
	case ctx.Quiet:
		config.Log.Level = "error"
	}

	p, err := parsedutch.NewWithConfig(config, opts...)
	if err != nil {
		return nil, nil, err
	}

	return p, config, nil
}

// readInput reads the named file, or stdin when path is empty.
func readInput(ctx *Context, path string) (*vfile.File, error) {
	if path == "" {
		return vfile.FromReader("", ctx.Stdin)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputFileNotExist, path)
	}

	return vfile.Read(path)
}

// ParseCmd represents the parse command
type ParseCmd struct {
	Input      string `arg:"" optional:"" help:"Input file (default: stdin)"`
	NoPosition bool   `help:"Omit positional information"`
	Level      string `help:"Node type to tokenize into" enum:"root,paragraph,sentence,word" default:"root"`
	Format     string `short:"f" help:"Output format" enum:"json,yaml" default:"json"`
	Markdown   bool   `short:"m" help:"Treat input as Markdown and parse the text of each paragraph and heading"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	var opts []parsedutch.Option
	if cmd.NoPosition {
		opts = append(opts, parsedutch.WithPosition(false))
	}

	p, _, err := loadParser(ctx, opts...)
	if err != nil {
		return err
	}

	file, err := readInput(ctx, cmd.Input)
	if err != nil {
		return err
	}

	if cmd.Markdown {
		doc, err := mdtext.Extract(file.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", file.Name(), err)
		}

		blocks := make([]markdownBlock, 0, len(doc.Blocks))
		for _, block := range doc.Blocks {
			blocks = append(blocks, markdownBlock{
				Kind: string(block.Kind),
				Line: block.Line,
				Tree: p.TokenizeParagraph(block.Text),
			})
		}

		return writeBlocks(ctx.Stdout, cmd.Format, blocks)
	}

	return writeTree(ctx.Stdout, cmd.Format, tokenize(p, cmd.Level, file.String()))
}

func tokenize(p *parsedutch.Parser, level, text string) *nlcst.Node {
	switch level {
	case "paragraph":
		return p.TokenizeParagraph(text)
	case "sentence":
		return p.TokenizeSentence(text)
	case "word":
		return p.TokenizeWord(text)
	default:
		return p.Parse(text)
	}
}

// CheckCmd represents the check command
type CheckCmd struct {
	Input string `arg:"" optional:"" help:"Input file (default: stdin)"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	p, _, err := loadParser(ctx)
	if err != nil {
		return err
	}

	file, err := readInput(ctx, cmd.Input)
	if err != nil {
		return err
	}

	root := p.ParseSource(file)

	err = nlcst.Validate(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCheckFailed, file.Name(), err)
	}

	if nlcst.ToString(root) != file.String() {
		return fmt.Errorf("%w: %s: text does not round trip", ErrCheckFailed, file.Name())
	}

	if !ctx.Quiet {
		color.New(color.FgGreen).Fprintf(ctx.Stdout, "✓ %s\n", file.Name())
		color.New(color.FgCyan).Fprintf(ctx.Stdout, "  Paragraphs: %d\n", nlcst.Count(root, nlcst.Paragraph))
		color.New(color.FgCyan).Fprintf(ctx.Stdout, "  Sentences: %d\n", nlcst.Count(root, nlcst.Sentence))
		color.New(color.FgCyan).Fprintf(ctx.Stdout, "  Words: %d\n", nlcst.Count(root, nlcst.Word))
	}

	return nil
}

// RegenerateCmd represents the regenerate command
type RegenerateCmd struct {
	Dir string `arg:"" optional:"" help:"Fixture directory (default: fixtures.dir from config)"`
}

// Run executes the regenerate command
func (cmd *RegenerateCmd) Run(ctx *Context) error {
	p, config, err := loadParser(ctx)
	if err != nil {
		return err
	}

	dir := cmd.Dir
	if dir == "" {
		dir = config.Fixtures.Dir
	}

	if dir == "" {
		return ErrNoFixtureDir
	}

	if ctx.Verbose {
		color.New(color.FgBlue).Fprintf(ctx.Stdout, "Regenerating fixtures in %s\n", dir)
	}

	written, err := fixture.Regenerate(dir, p)
	if err != nil {
		return fmt.Errorf("failed to regenerate fixtures: %w", err)
	}

	if !ctx.Quiet {
		for _, path := range written {
			color.New(color.FgGreen).Fprintf(ctx.Stdout, "Regenerated: %s\n", path)
		}

		color.New(color.FgGreen).Fprintf(ctx.Stdout, "Regeneration completed for %d fixture(s)\n", len(written))
	}

	return nil
}
