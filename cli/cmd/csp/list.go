package csp

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the configured providers",
		Run: func(cmd *cobra.Command, args []string) {
			err := runList()
			if err != nil {
				fmt.Printf("[error] %s\n", err.Error())
				os.Exit(1)
			}
		},
	}
)

func runList() error {
	c, err := inventory()
	if err != nil {
		return err
	}

	if viper.GetString("output.format") == "msgpack" {
		b, err := c.Marshal()
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(b))
		return nil
	}

	e := c.Enumerator()
	for e.MoveNext() {
		fmt.Print(describe(e.Current()))
	}

	return nil
}
