package main

import "github.com/spf13/cobra"

// usageError marks flag-parse failures so main can exit 2 instead of 1.
type usageError struct {
	err error
}

func (u usageError) Error() string { return u.err.Error() }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fab",
		Short:         "Work with items in a remote workspace store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})

	root.AddCommand(newImportCmd())
	return root
}
