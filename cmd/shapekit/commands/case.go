package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/shapekit/casing"
)

// CaseFlags contains flags for the case command
type CaseFlags struct {
	Style string
}

// SetupCaseFlags creates and configures a FlagSet for the case command.
// Returns the FlagSet and a CaseFlags struct with bound flag variables.
func SetupCaseFlags() (*flag.FlagSet, *CaseFlags) {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	flags := &CaseFlags{}

	fs.StringVar(&flags.Style, "style", "snake", "target style: pascal, camel, snake, or kebab")
	fs.StringVar(&flags.Style, "s", "snake", "target style (shorthand)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit case [flags] <identifier>...\n\n")
		Writef(output, "Convert identifiers to another case style, one result per line.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  shapekit case fooBar                 # foo_bar\n")
		Writef(output, "  shapekit case -s kebab 'foo bar_baz' # foo-bar-baz\n")
		Writef(output, "  shapekit case -s pascal user_profile # UserProfile\n")
	}

	return fs, flags
}

// HandleCase executes the case command
func HandleCase(args []string) error {
	fs, flags := SetupCaseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("case command requires at least one identifier")
	}

	style, err := casing.ParseStyle(flags.Style)
	if err != nil {
		return err
	}

	for _, input := range fs.Args() {
		Writef(os.Stdout, "%s\n", casing.Convert(input, style))
	}
	return nil
}

// SetupSnakeToCamelFlags creates a FlagSet for the snake2camel command.
func SetupSnakeToCamelFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("snake2camel", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit snake2camel <identifier>...\n\n")
		Writef(output, "Convert snake_case identifiers to camelCase. The first word is kept as-is.\n\n")
		Writef(output, "Examples:\n")
		Writef(output, "  shapekit snake2camel get_user_by_id  # getUserById\n")
	}
	return fs
}

// HandleSnakeToCamel executes the snake2camel command
func HandleSnakeToCamel(args []string) error {
	fs := SetupSnakeToCamelFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("snake2camel command requires at least one identifier")
	}

	for _, input := range fs.Args() {
		Writef(os.Stdout, "%s\n", casing.SnakeToCamel(input))
	}
	return nil
}
