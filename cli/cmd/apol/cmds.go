package apol

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

//Attach attaches the application policies commands to a root/parent command
func Attach(parent *cobra.Command, l *zap.Logger) {
	if l != nil {
		logger = l
	}

	parent.AddCommand(encodeCmd)
	parent.AddCommand(decodeCmd)
	parent.AddCommand(inspectCmd)
}
