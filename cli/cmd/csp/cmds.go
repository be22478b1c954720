package csp

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/appolicy/csp"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

//Attach attaches the csp commands to a root/parent command
func Attach(parent *cobra.Command, l *zap.Logger) {
	if l != nil {
		logger = l
	}

	parent.AddCommand(listCmd)
	parent.AddCommand(lookupCmd)
}

//inventory loads the providers configured in the config file
func inventory() (*csp.Collection, error) {
	if !viper.IsSet(csp.DefaultInventoryKey) {
		return nil, fmt.Errorf("no %q inventory configured, use --config", csp.DefaultInventoryKey)
	}

	c, err := csp.LoadInventory(viper.GetViper(), csp.DefaultInventoryKey)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded provider inventory", zap.Int("providers", c.Len()))
	return c, nil
}

func describe(p *csp.Legacy) string {
	return fmt.Sprintf("%s\t%s\thardware=%t\n", p.Name, p.Type.String(), p.Hardware)
}
