package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/shapekit/words"
)

// WordsFlags contains flags for the words command
type WordsFlags struct {
	Delimiters string
	Format     string
}

// SetupWordsFlags creates and configures a FlagSet for the words command.
// Returns the FlagSet and a WordsFlags struct with bound flag variables.
func SetupWordsFlags() (*flag.FlagSet, *WordsFlags) {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	flags := &WordsFlags{}

	fs.StringVar(&flags.Delimiters, "delimiters", "", "comma-separated word delimiters (default: space, hyphen, underscore)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit words [flags] <text>\n\n")
		Writef(output, "Split text into lowercase words on delimiters and before uppercase letters.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  shapekit words fooBarBaz\n")
		Writef(output, "  shapekit words --delimiters '.,/' api.v2/users\n")
		Writef(output, "  shapekit words --format json 'foo bar_baz'\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Underscore always separates words, even with custom delimiters\n")
		Writef(output, "  - Acronyms are not grouped: HTTPServer splits into h, t, t, p, server\n")
	}

	return fs, flags
}

// HandleWords executes the words command
func HandleWords(args []string) error {
	fs, flags := SetupWordsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("words command requires exactly one text argument")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	tok := words.New(ParseList(flags.Delimiters)...)
	if err := tok.Validate(); err != nil {
		return err
	}

	return OutputStructured(tok.Split(fs.Arg(0)), flags.Format)
}
