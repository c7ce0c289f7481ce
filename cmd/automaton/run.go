package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <name>",
		Short: "Test inputs interactively",
		Long: `Reads one input per line and prints the verdict with the visited states.
Type ':quit' or ':exit' (or send EOF) to leave. Every other line, including
an empty one, is tested as input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			// Fail fast on a missing or invalid automaton.
			d, err := s.Catalog.Get(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			interactive := isTerminal(out)
			if interactive {
				tui.PrintBanner(out, automaton.Version)
				fmt.Fprintf(out, "%s: %d states, alphabet %v\n", name, d.Len(), d.Sigma())
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				if interactive {
					fmt.Fprint(out, "> ")
				}
				if !scanner.Scan() {
					break
				}
				input := strings.TrimRight(scanner.Text(), "\r")
				if input == ":quit" || input == ":exit" {
					break
				}

				run, err := s.Catalog.Trace(cmd.Context(), name, input)
				if err != nil {
					return err
				}
				printRun(out, input, run, true, interactive)
			}
			return scanner.Err()
		},
	}
}
