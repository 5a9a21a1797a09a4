package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

type cliVersion struct{}

func newCLIVersion() *cliVersion {
	return &cliVersion{}
}

func (cli cliVersion) NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Display version",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "showcase %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
