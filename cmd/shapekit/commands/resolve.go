package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/erraggy/shapekit/keypath"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Format string
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml, or go")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit resolve [flags] <file|-> <path>\n\n")
		Writef(output, "Print the value at a dot-separated key path.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  shapekit resolve config.yaml server.port\n")
		Writef(output, "  shapekit resolve --format json config.yaml server\n")
		Writef(output, "  shapekit resolve --format go config.yaml server   # include Go types\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Path resolved\n")
		Writef(output, "  1    Path not found or document invalid\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("resolve command requires a file path (or '-') and a key path")
	}
	if err := ValidateOutputFormat(flags.Format, FormatGo); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	v, err := keypath.Resolve(doc, fs.Arg(1))
	if err != nil {
		return err
	}

	if flags.Format == FormatGo {
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		Writef(os.Stdout, "%s", cfg.Sdump(v))
		return nil
	}
	return OutputStructured(v, flags.Format)
}

// PickFlags contains flags for the pick command
type PickFlags struct {
	Format string
}

// SetupPickFlags creates and configures a FlagSet for the pick command.
// Returns the FlagSet and a PickFlags struct with bound flag variables.
func SetupPickFlags() (*flag.FlagSet, *PickFlags) {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	flags := &PickFlags{}

	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit pick [flags] <file|-> <path>...\n\n")
		Writef(output, "Print a document containing only the given key paths.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  shapekit pick config.yaml server.port debug\n")
		Writef(output, "  shapekit pick --format json - metadata.name spec.replicas\n")
	}

	return fs, flags
}

// HandlePick executes the pick command
func HandlePick(args []string) error {
	fs, flags := SetupPickFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("pick command requires a file path (or '-') and at least one key path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	picked, err := keypath.Pick(doc, fs.Args()[1:]...)
	if err != nil {
		return err
	}
	return OutputStructured(picked, flags.Format)
}
