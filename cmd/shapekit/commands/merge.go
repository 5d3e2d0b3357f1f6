package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/shapekit/merge"
)

// MergeFlags contains flags for the override and inject commands
type MergeFlags struct {
	Patch    string
	MaxDepth int
	Shallow  bool
	Format   string
	Verbose  bool
}

// mergeCommand describes the differences between override and inject.
type mergeCommand struct {
	name    string
	summary string
	shallow func(base, patch map[string]any) map[string]any
	deep    func(m *merge.Merger, base, patch map[string]any) map[string]any
}

var (
	overrideCommand = mergeCommand{
		name:    "override",
		summary: "Replace keys of base that also appear in patch, at every nesting level.",
		shallow: merge.Override,
		deep:    (*merge.Merger).DeepOverride,
	}
	injectCommand = mergeCommand{
		name:    "inject",
		summary: "Add or replace the keys of patch in base, at every nesting level.",
		shallow: merge.Inject,
		deep:    (*merge.Merger).DeepInject,
	}
)

// setupMergeFlags creates and configures a FlagSet for a merge command.
func setupMergeFlags(cmd mergeCommand) (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Patch, "patch", "", "patch document (file path or '-' for stdin)")
	fs.StringVar(&flags.Patch, "p", "", "patch document (shorthand)")
	fs.IntVar(&flags.MaxDepth, "max-depth", merge.DefaultMaxDepth, "number of object levels to process")
	fs.BoolVar(&flags.Shallow, "shallow", false, "only merge the top level")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log depth truncation to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: shapekit %s [flags] --patch <file|-> <base-file|->\n\n", cmd.name)
		Writef(output, "%s\n\n", cmd.summary)
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  shapekit %s --patch patch.yaml base.yaml\n", cmd.name)
		Writef(output, "  shapekit %s --shallow --format json -p patch.json base.json\n", cmd.name)
		Writef(output, "  cat base.yaml | shapekit %s -p patch.yaml -\n", cmd.name)
		Writef(output, "\nNotes:\n")
		Writef(output, "  - The whole patch is applied to every nested object of base (broadcast),\n")
		Writef(output, "    not to the sub-object at the same path\n")
		Writef(output, "  - Only one of base and patch may be read from stdin\n")
	}

	return fs, flags
}

// SetupOverrideFlags creates and configures a FlagSet for the override command.
func SetupOverrideFlags() (*flag.FlagSet, *MergeFlags) {
	return setupMergeFlags(overrideCommand)
}

// SetupInjectFlags creates and configures a FlagSet for the inject command.
func SetupInjectFlags() (*flag.FlagSet, *MergeFlags) {
	return setupMergeFlags(injectCommand)
}

// HandleOverride executes the override command
func HandleOverride(args []string) error {
	return handleMerge(overrideCommand, args)
}

// HandleInject executes the inject command
func HandleInject(args []string) error {
	return handleMerge(injectCommand, args)
}

func handleMerge(cmd mergeCommand, args []string) error {
	fs, flags := setupMergeFlags(cmd)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%s command requires exactly one base file path or '-' for stdin", cmd.name)
	}
	if flags.Patch == "" {
		fs.Usage()
		return fmt.Errorf("%s command requires --patch", cmd.name)
	}
	basePath := fs.Arg(0)
	if basePath == StdinFilePath && flags.Patch == StdinFilePath {
		return fmt.Errorf("base and patch cannot both be read from stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	m := &merge.Merger{MaxDepth: flags.MaxDepth, Logger: NewLogger(flags.Verbose).With("command", cmd.name)}
	if err := m.Validate(); err != nil {
		return err
	}

	base, err := ReadDocument(basePath)
	if err != nil {
		return err
	}
	patch, err := ReadDocument(flags.Patch)
	if err != nil {
		return err
	}

	var result map[string]any
	if flags.Shallow {
		result = cmd.shallow(base, patch)
	} else {
		result = cmd.deep(m, base, patch)
	}
	return OutputStructured(result, flags.Format)
}
