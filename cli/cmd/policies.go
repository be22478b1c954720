package cmd

import (
	"github.com/spf13/cobra"
	apolCmd "github.com/tcfw/appolicy/cli/cmd/apol"
)

var (
	policiesCmd = &cobra.Command{
		Use:     "policies",
		Aliases: []string{"apol"},
		Short:   "Encode, decode and inspect Application Policies extensions",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
)

func init() {
	apolCmd.Attach(policiesCmd, logger)
}
