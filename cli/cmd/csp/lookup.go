package csp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	lookupCmd = &cobra.Command{
		Use:   "lookup {name}",
		Short: "Look up a provider by name (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := runLookup(args[0])
			if err != nil {
				fmt.Printf("[error] %s\n", err.Error())
				os.Exit(1)
			}
		},
	}
)

func runLookup(name string) error {
	c, err := inventory()
	if err != nil {
		return err
	}

	p := c.ByName(name)
	if p == nil {
		logger.Debug("provider not found", zap.String("name", name))
		return fmt.Errorf("provider %q not found", name)
	}

	fmt.Print(describe(p))
	return nil
}
