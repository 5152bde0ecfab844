package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"encard/internal/quiz"
	"encard/internal/ui/play"
)

// runQuizUI runs the event loop; tests replace it.
var runQuizUI = play.Run

// runPlay builds the handler for the interactive quiz.
func runPlay(cmd *Command) func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
	return func(opts globalOptions, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		noColor := flags.Bool("no-color", false, "Disable colors")
		if ok, code := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "The interactive quiz needs a terminal; use \"encard list\" to print questions instead.")
			return ExitError
		}

		rt, err := loadRuntime(opts, logToFile, stderr)
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

		session := quiz.NewSession(st)
		uiOpts := play.Options{
			NoColor:      resolveNoColor(*noColor, rt.cfg.UI.NoColor),
			TickInterval: rt.cfg.UI.TickInterval,
			Logger:       rt.log,
		}
		rt.log.Info("quiz started")
		if err := runQuizUI(ctx, session, play.Terminal{Input: os.Stdin, Output: stdout}, uiOpts); err != nil {
			return reportError(stderr, err)
		}
		rt.log.WithField("score", session.Score()).WithField("answered", session.Answered()).Info("quiz finished")
		if session.Answered() > 0 {
			fmt.Fprintf(stdout, "Final score: %d/%d\n", session.Score(), session.Answered())
		}
		return ExitOK
	}
}
