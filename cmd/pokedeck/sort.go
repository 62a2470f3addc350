package main

import (
	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Print the collection in search order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			collection, err := a.load(cmd)
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), collection)
		},
	}
}
