package apol

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
	"github.com/tcfw/appolicy/x509ext"
	"go.uber.org/zap"
)

var (
	decodeCmd = &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode an Application Policies extension value",
		Long:  "Decode an extension value given as hex, or read from a file holding raw DER or a PEM encoded extension record",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := runDecode(args)
			if err != nil {
				fmt.Printf("[error] %s\n", err.Error())
				os.Exit(1)
			}
		},
	}

	decodeCmdCritical bool
	decodeCmdFile     string
)

func init() {
	decodeCmd.Flags().BoolVarP(&decodeCmdCritical, "critical", "c", false, "Treat the extension as critical")
	decodeCmd.Flags().StringVar(&decodeCmdFile, "file", "", "Read the extension from a file (DER or PEM)")
}

func runDecode(args []string) error {
	var ap *x509ext.ApplicationPolicies
	var err error

	switch {
	case decodeCmdFile != "":
		ap, err = decodeFile(decodeCmdFile)
	case len(args) == 1:
		var raw []byte
		raw, err = parseHex(args[0])
		if err != nil {
			return fmt.Errorf("reading hex: %s", err)
		}
		ap, err = x509ext.DecodeApplicationPolicies(raw, decodeCmdCritical)
	default:
		return fmt.Errorf("either a hex value or --file is required")
	}
	if err != nil {
		return err
	}

	fmt.Print(describe(ap))
	return nil
}

func decodeFile(file string) (*x509ext.ApplicationPolicies, error) {
	f, err := os.OpenFile(file, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening file: %s", err)
	}
	defer f.Close()

	b, err := ioutil.ReadAll(io.LimitReader(f, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading file: %s", err)
	}

	return decodeBytes(b, decodeCmdCritical)
}

//decodeBytes decodes either a PEM extension record or a raw DER value
func decodeBytes(b []byte, critical bool) (*x509ext.ApplicationPolicies, error) {
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte("-----BEGIN")) {
		ext, _, err := x509ext.ParsePEMExtension(b)
		if err != nil {
			return nil, err
		}

		logger.Debug("read extension record",
			zap.String("id", ext.ID),
			zap.Bool("critical", ext.Critical))

		return x509ext.ApplicationPoliciesFromExtension(*ext)
	}

	return x509ext.DecodeApplicationPolicies(b, critical)
}
