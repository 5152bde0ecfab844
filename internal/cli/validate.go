package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
	return func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		if ok, code := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		rt, err := loadRuntime(opts, logToStderr, stderr)
		if err != nil {
			fmt.Fprintln(stderr, "Validation failed:")
			return reportError(stderr, err)
		}
		defer rt.close()

		ctx := context.Background()
		st, err := rt.openStore(ctx)
		if err != nil {
			fmt.Fprintln(stderr, "Validation failed:")
			return reportError(stderr, err)
		}
		defer st.Close()

		records, err := st.List(ctx)
		if err != nil {
			fmt.Fprintln(stderr, "Validation failed:")
			return reportError(stderr, err)
		}
		fmt.Fprintf(stdout, "Store OK (%d questions)\n", len(records))
		return ExitOK
	}
}
