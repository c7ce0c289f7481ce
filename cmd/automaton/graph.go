package main

import (
	"fmt"

	"github.com/aretw0/automaton/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <name>",
		Short: "Export the automaton as a Mermaid diagram",
		Long:  `Outputs a Mermaid flowchart of the automaton. With --input, the path of that input is highlighted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			d, err := s.Catalog.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var overlay *graph.GraphOverlay
			if cmd.Flags().Changed("input") {
				input, _ := cmd.Flags().GetString("input")
				overlay = graph.RunOverlay(d.Trace(input))
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(d, overlay))
			return nil
		},
	}
	cmd.Flags().String("input", "", "Highlight the path taken by this input")
	return cmd
}
