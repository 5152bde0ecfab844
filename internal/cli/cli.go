package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	// ExitUsage is returned for argument errors; the message is printed but the
	// process still exits successfully.
	ExitUsage = 0
)

// globalOptions are the flags accepted before the command name.
type globalOptions struct {
	dataDir string
	store   string
	backend string
}

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(opts globalOptions, args []string, stdout, stderr io.Writer) int
}

// Run parses global flags and dispatches to a command. With no command the
// interactive quiz starts.
func Run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("encard", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts globalOptions
	flags.StringVar(&opts.dataDir, "data-dir", "", "Data directory (default: $ENCARD_HOME or ~/.encard)")
	flags.StringVar(&opts.store, "store", "", "Question store path (overrides config)")
	flags.StringVar(&opts.backend, "backend", "", "Question store backend: json|duckdb (overrides config)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n\n", err)
		printUsage(stderr)
		return ExitUsage
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return findCommand("play").Run(opts, nil, stdout, stderr)
	}
	if isHelpArg(rest[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(rest[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", rest[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(opts, rest[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  encard [--data-dir <dir>] [--store <path>] [--backend json|duckdb] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nWithout a command, encard starts the interactive quiz.")
	fmt.Fprintln(w, "Use \"encard <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// parseFlags handles --help and flag errors the same way for every command.
// It returns false when the command should stop with the given exit code.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (bool, int) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return false, ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return false, ExitUsage
	}
	return true, ExitOK
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(opts globalOptions, args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Write a starter config.yml and create the question store", []string{
		"encard [--data-dir <dir>] [--backend json|duckdb] init [--yes]",
	}, runInit),
	command("play", "Start the interactive quiz", []string{
		"encard play [--no-color]",
	}, runPlay),
	command("add", "Add a question to the store", []string{
		"encard add --prompt <text> --choice <text> [--choice <text>...] --answer <index>",
	}, runAdd),
	command("import", "Add every question from a YAML or JSON file", []string{
		"encard import <file.yml|file.json>",
	}, runImport),
	command("list", "List stored questions", []string{
		"encard list",
	}, runList),
	command("validate", "Check that the question store can be read", []string{
		"encard validate",
	}, runValidate),
}
