package apol

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/appolicy/x509ext"
	"go.uber.org/zap"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode {oid...}",
		Short: "Encode policy OIDs into an Application Policies extension",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := runEncode(args)
			if err != nil {
				fmt.Printf("[error] %s\n", err.Error())
				os.Exit(1)
			}
		},
	}

	encodeCmdCritical bool
)

func init() {
	encodeCmd.Flags().BoolVarP(&encodeCmdCritical, "critical", "c", false, "Mark the extension critical")
}

func runEncode(policies []string) error {
	ap, err := x509ext.NewApplicationPolicies(policies, encodeCmdCritical)
	if err != nil {
		return err
	}

	logger.Debug("encoded application policies",
		zap.Strings("policies", ap.Policies()),
		zap.Bool("critical", ap.Critical()),
		zap.Int("bytes", len(ap.Raw())))

	out, err := formatExtension(ap.Extension(), viper.GetString("output.format"))
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}
