package main

import (
	"fmt"

	"github.com/aretw0/automaton/internal/presentation/tui"
	"github.com/aretw0/automaton/pkg/schema"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print an automaton",
		Long: `Prints the automaton in canonical text form (states, alphabet, transition table,
start state and final states). Use --format to print its definition document instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			pretty, _ := cmd.Flags().GetBool("pretty")
			name := args[0]

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			switch format {
			case "canonical":
				d, err := s.Catalog.Get(cmd.Context(), name)
				if err != nil {
					return err
				}
				if !pretty {
					fmt.Fprint(out, d.String())
					return nil
				}
				rendered, err := tui.NewRenderer()(tui.Markdown(name, d))
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
			case "json", "yaml":
				def, err := s.Catalog.Definition(cmd.Context(), name)
				if err != nil {
					return err
				}
				data, err := schema.Encode(def, "."+format)
				if err != nil {
					return err
				}
				out.Write(data)
			default:
				return fmt.Errorf("unknown format %q (supported: canonical, json, yaml)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "canonical", "Output format: 'canonical', 'json' or 'yaml'")
	cmd.Flags().Bool("pretty", false, "Render the transition table for the terminal")
	return cmd
}
