package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automaton/internal/presentation/tui"
	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/spf13/cobra"
)

// errRejected makes the process exit non-zero when --strict is set and an input is rejected.
var errRejected = errors.New("input rejected")

func newAcceptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accepts <name> <input>...",
		Short: "Decide whether inputs belong to the language of an automaton",
		Long: `Runs each input through the automaton and prints ACCEPT or REJECT.
Use "" to test the empty string.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, _ := cmd.Flags().GetBool("trace")
			strict, _ := cmd.Flags().GetBool("strict")

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			color := isTerminal(out)
			rejected := false
			for _, input := range args[1:] {
				run, err := s.Catalog.Trace(cmd.Context(), args[0], input)
				if err != nil {
					return err
				}
				printRun(out, input, run, trace, color)
				rejected = rejected || !run.Accepted()
			}
			if strict && rejected {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().Bool("trace", false, "Print the visited states")
	cmd.Flags().Bool("strict", false, "Exit with an error if any input is rejected")
	return cmd
}

func printRun(out io.Writer, input string, run dfa.Run, trace, color bool) {
	verdict := "REJECT"
	if run.Accepted() {
		verdict = "ACCEPT"
	}
	if color {
		verdict = tui.Verdict(run.Accepted())
	}
	fmt.Fprintf(out, "%q\t%s\n", input, verdict)

	if !trace {
		return
	}
	if len(run.Path) > 0 {
		fmt.Fprintf(out, "  path: %s\n", strings.Join(run.Path, " -> "))
	}
	if run.Err != nil {
		fmt.Fprintf(out, "  reason: %v\n", run.Err)
	}
}
