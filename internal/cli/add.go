package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"encard/internal/question"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ", ")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// runAdd builds the handler for the add command.
func runAdd(cmd *Command) func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
	return func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		prompt := flags.String("prompt", "", "Question text")
		var choices stringList
		flags.Var(&choices, "choice", "Answer choice (repeatable, in display order)")
		answer := flags.Int("answer", -1, "Zero-based index of the correct choice")
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

		record, err := question.Normalize(question.Record{Prompt: *prompt, Choices: choices, CorrectIndex: *answer})
		if err != nil {
			return reportError(stderr, err)
		}

		ctx := context.Background()
		st, err := rt.openStore(ctx)
		if err != nil {
			return reportError(stderr, err)
		}
		defer st.Close()

		stored, err := st.Append(ctx, record)
		if err != nil {
			return reportError(stderr, err)
		}
		fmt.Fprintf(stdout, "Added question %s\n", stored.ID)
		return ExitOK
	}
}
