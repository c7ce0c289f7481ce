package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/automaton/pkg/schema"
	"github.com/spf13/cobra"
)

func newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap <name> <a> <b>",
		Short: "Interchange two symbols of an automaton",
		Long: `Builds a new automaton in which every transition on <a> becomes a transition on <b>
and vice versa, and prints it. The source automaton is never modified; use --save to
store the result under a new name.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			saveAs, _ := cmd.Flags().GetString("save")

			a, errA := schema.ParseSymbol(args[1])
			b, errB := schema.ParseSymbol(args[2])
			if err := errors.Join(errA, errB); err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			swapped, err := s.Catalog.Swap(cmd.Context(), args[0], a, b)
			if err != nil {
				return err
			}

			if saveAs != "" {
				if s.Store == nil {
					return fmt.Errorf("--save is not supported by this source")
				}
				def := schema.Export(saveAs, swapped)
				def.Description = fmt.Sprintf("%s with %s and %s swapped", args[0], a, b)
				if err := s.Store.Save(cmd.Context(), def); err != nil {
					return err
				}
				s.Logger.Info("saved swapped automaton", "name", saveAs)
			}

			fmt.Fprint(cmd.OutOrStdout(), swapped.String())
			return nil
		},
	}
	cmd.Flags().String("save", "", "Store the result under this name")
	return cmd
}
