package apol

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
	"github.com/tcfw/appolicy/x509ext"
	"go.uber.org/zap"
)

var (
	inspectCmd = &cobra.Command{
		Use:   "inspect {file}",
		Short: "Show the Application Policies of PEM encoded certificates",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, file := range args {
				err := runInspect(file)
				if err != nil {
					fmt.Printf("[error] %s\n", err.Error())
					os.Exit(1)
				}
			}
		},
	}
)

func runInspect(file string) error {
	f, err := os.OpenFile(file, os.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("opening file: %s", err)
	}
	defer f.Close()

	b, err := ioutil.ReadAll(io.LimitReader(f, 1<<20*30))
	if err != nil {
		return fmt.Errorf("reading file: %s", err)
	}

	certs, err := readCertificates(b)
	if err != nil {
		return err
	}

	for _, c := range certs {
		fmt.Printf("------- Certificate ------\n%s", inspect(c))
		fmt.Printf("--------------------------\n")
	}

	return nil
}

//readCertificates parses every CERTIFICATE block in b, skipping other blocks
func readCertificates(b []byte) ([]*x509.Certificate, error) {
	certs := []*x509.Certificate{}

	for len(b) != 0 {
		block, rest := pem.Decode(b)
		if block == nil {
			break
		}
		b = rest

		if block.Type != "CERTIFICATE" {
			logger.Debug("skipping PEM block", zap.String("type", block.Type))
			continue
		}

		c, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("reading certificate: %s", err)
		}
		certs = append(certs, c)
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("no certificates found")
	}

	return certs, nil
}

func inspect(c *x509.Certificate) string {
	out := fmt.Sprintf("Subject: %s\n", c.Subject.String())

	ap, ok, err := x509ext.FindApplicationPolicies(c)
	switch {
	case err != nil:
		logger.Warn("invalid application policies extension",
			zap.String("subject", c.Subject.String()),
			zap.Error(err))
		return out + fmt.Sprintf("Application Policies: invalid (%s)\n", err)
	case !ok:
		return out + "Application Policies: none\n"
	}

	return out + describe(ap)
}
