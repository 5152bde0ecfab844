package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"encard/internal/question"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
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
			return reportError(stderr, err)
		}
		defer rt.close()

		ctx := context.Background()
		st, err := rt.openStore(ctx)
		if err != nil {
			return reportError(stderr, err)
		}
		defer st.Close()

		records, err := st.List(ctx)
		if err != nil {
			return reportError(stderr, err)
		}
		if len(records) == 0 {
			fmt.Fprintln(stdout, "No questions stored.")
			return ExitOK
		}
		for i, record := range records {
			writeRecord(stdout, i, record)
		}
		return ExitOK
	}
}

// writeRecord prints one record with its correct choice marked.
func writeRecord(w io.Writer, index int, record question.Record) {
	fmt.Fprintf(w, "%d. %s\n", index+1, record.Prompt)
	for i, choice := range record.Choices {
		mark := " "
		if record.IsCorrect(i) {
			mark = "x"
		}
		fmt.Fprintf(w, "   [%s] %d: %s\n", mark, i, choice)
	}
}
