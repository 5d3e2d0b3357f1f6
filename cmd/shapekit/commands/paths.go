package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/shapekit/keypath"
)

// PathsFlags contains flags for the paths command
type PathsFlags struct {
	MaxDepth int
	LeafOnly bool
	Format   string
	Verbose  bool
}

// SetupPathsFlags creates and configures a FlagSet for the paths command.
// Returns the FlagSet and a PathsFlags struct with bound flag variables.
func SetupPathsFlags() (*flag.FlagSet, *PathsFlags) {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	flags := &PathsFlags{}

	fs.IntVar(&flags.MaxDepth, "max-depth", keypath.DefaultMaxDepth, "number of object levels to descend")
	fs.BoolVar(&flags.LeafOnly, "leaf-only", false, "only list terminal paths")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log depth truncation to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit paths [flags] <file|->\n\n")
		Writef(output, "List the dot-separated key paths of a JSON or YAML document, sorted.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  shapekit paths config.yaml\n")
		Writef(output, "  shapekit paths --leaf-only --max-depth 3 config.json\n")
		Writef(output, "  kubectl get deploy app -o json | shapekit paths --leaf-only -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Arrays are leaves; their elements are never listed\n")
		Writef(output, "  - Objects deeper than --max-depth are silently omitted (see --verbose)\n")
	}

	return fs, flags
}

// HandlePaths executes the paths command
func HandlePaths(args []string) error {
	fs, flags := SetupPathsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("paths command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	e := keypath.Enumerator{
		MaxDepth: flags.MaxDepth,
		LeafOnly: flags.LeafOnly,
		Logger:   NewLogger(flags.Verbose),
	}
	if err := e.Validate(); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	return OutputStructured(e.Enumerate(doc), flags.Format)
}
