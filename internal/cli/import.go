package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"encard/internal/question"
)

// runImport builds the handler for the import command.
func runImport(cmd *Command) func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
	return func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		if ok, code := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one questions file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		rt, err := loadRuntime(opts, logToStderr, stderr)
		if err != nil {
			return reportError(stderr, err)
		}
		defer rt.close()

		records, err := question.LoadFile(flags.Arg(0))
		if err != nil {
			return reportError(stderr, err)
		}

		ctx := context.Background()
		st, err := rt.openStore(ctx)
		if err != nil {
			return reportError(stderr, err)
		}
		defer st.Close()

		stored, err := st.List(ctx)
		if err != nil {
			return reportError(stderr, err)
		}
		if err := question.CheckNewIDs(records, stored); err != nil {
			return reportError(stderr, err)
		}

		for i, record := range records {
			if _, err := st.Append(ctx, record); err != nil {
				fmt.Fprintf(stderr, "Imported %d of %d questions before failing.\n", i, len(records))
				return reportError(stderr, err)
			}
		}
		rt.log.WithField("count", len(records)).Info("imported questions")
		fmt.Fprintf(stdout, "Imported %d questions\n", len(records))
		return ExitOK
	}
}
