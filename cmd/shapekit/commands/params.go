package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/shapekit/params"
)

// ParamsFlags contains flags for the params command
type ParamsFlags struct {
	Open   string
	Close  string
	Format string
}

// SetupParamsFlags creates and configures a FlagSet for the params command.
// Returns the FlagSet and a ParamsFlags struct with bound flag variables.
func SetupParamsFlags() (*flag.FlagSet, *ParamsFlags) {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	flags := &ParamsFlags{}

	fs.StringVar(&flags.Open, "open", "{{", "opening placeholder marker")
	fs.StringVar(&flags.Close, "close", "}}", "closing placeholder marker")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit params [flags] <template>\n\n")
		Writef(output, "List the placeholder names in a space-separated template, sorted.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  shapekit params '{{foo}} bar {{baz}}'\n")
		Writef(output, "  shapekit params --open '<' --close '>' '/users/<id>/posts/<post>'\n")
		Writef(output, "  shapekit params --open %% --close %% --format json '%%name%% is %%age%%'\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Both markers must appear inside one space-separated token\n")
	}

	return fs, flags
}

// HandleParams executes the params command
func HandleParams(args []string) error {
	fs, flags := SetupParamsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("params command requires exactly one template argument")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p := &params.Parametrizer{Open: flags.Open, Close: flags.Close}
	if err := p.Validate(); err != nil {
		return err
	}

	return OutputStructured(p.Parametrize(fs.Arg(0)).Names(), flags.Format)
}
