package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"encard/internal/config"
	"encard/internal/store"
)

// initInput is read for the init prompts; tests replace it.
var initInput io.Reader = os.Stdin

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
	return func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		yes := flags.Bool("yes", false, "Accept the defaults without prompting")
		if ok, code := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		dataDir, err := resolveDataDir(opts)
		if err != nil {
			fmt.Fprintln(stderr, "Init failed:")
			return reportError(stderr, err)
		}
		backend := strings.ToLower(strings.TrimSpace(opts.backend))
		if backend == "" {
			backend = store.BackendJSON
		}

		if !*yes {
			reader := bufio.NewReader(initInput)
			confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize encard in %s?", dataDir), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
			backend, err = promptChoice(reader, stdout, "Store backend", []string{store.BackendJSON, store.BackendDuckDB}, backend)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
		}

		path, err := config.Scaffold(dataDir, backend)
		if err != nil {
			fmt.Fprintln(stderr, "Init failed:")
			return reportError(stderr, err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)

		opts.backend = backend
		rt, err := loadRuntime(opts, logToStderr, stderr)
		if err != nil {
			return reportError(stderr, err)
		}
		defer rt.close()
		st, err := rt.openStore(context.Background())
		if err != nil {
			return reportError(stderr, err)
		}
		if err := st.Close(); err != nil {
			return reportError(stderr, err)
		}
		fmt.Fprintf(stdout, "Store ready at %s\n", rt.cfg.Store.Path)
		return ExitOK
	}
}
