package main

import (
	"fmt"

	"github.com/aretw0/automaton/pkg/adapters/file"
	"github.com/aretw0/automaton/pkg/adapters/redis"
	"github.com/aretw0/automaton/pkg/schema"
	"github.com/spf13/cobra"
)

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Copy the definitions of --dir into redis",
		Long: `Validates every definition in --dir and stores it in the redis store at --redis,
so that servers started with --source redis can use it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			src := file.New(dir)
			var opts []redis.Option
			if ttl > 0 {
				opts = append(opts, redis.WithTTL(ttl))
			}
			dst := openRedis(cmd, opts...)
			defer dst.Close()

			names, err := src.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				def, err := src.Get(cmd.Context(), name)
				if err != nil {
					return err
				}
				if err := schema.Validate(def); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := dst.Save(cmd.Context(), def); err != nil {
					return fmt.Errorf("push %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "pushed %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().Duration("ttl", 0, "Expire pushed definitions after this duration (0 keeps them)")
	return cmd
}
