package main

import (
	"fmt"
	"slices"

	"github.com/aretw0/automaton/pkg/schema"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [name]...",
		Short: "Check definitions for consistency",
		Long: `Builds every definition (or the named ones), runs their sample cases and
reports states that cannot be reached from the start state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			names := args
			if len(names) == 0 {
				if names, err = s.Catalog.List(cmd.Context()); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range names {
				def, err := s.Catalog.Definition(cmd.Context(), name)
				if err != nil {
					return err
				}
				d, err := schema.Build(def)
				if err == nil {
					err = schema.Check(def, d)
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "❌ %s\n%v\n", name, err)
					continue
				}

				fmt.Fprintf(out, "✅ %s (%d states, %d cases)\n", name, d.Len(), len(def.Cases))
				reachable := d.Reachable()
				for _, state := range d.States() {
					if !slices.Contains(reachable, state) {
						fmt.Fprintf(out, "   ⚠️  unreachable state %s\n", state)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d definitions are invalid", failed, len(names))
			}
			return nil
		},
	}
}
