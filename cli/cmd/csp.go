package cmd

import (
	"github.com/spf13/cobra"
	cspCmds "github.com/tcfw/appolicy/cli/cmd/csp"
)

var (
	providersCmd = &cobra.Command{
		Use:   "csp",
		Short: "List and look up legacy cryptographic service providers",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
)

func init() {
	cspCmds.Attach(providersCmd, logger)
}
