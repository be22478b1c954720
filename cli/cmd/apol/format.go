package apol

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/tcfw/appolicy/x509ext"
)

const (
	formatHex     = "hex"
	formatBase64  = "base64"
	formatPEM     = "pem"
	formatMsgpack = "msgpack"
)

var knownPolicies = map[string]string{
	"1.3.6.1.5.5.7.3.1":       "Server Authentication",
	"1.3.6.1.5.5.7.3.2":       "Client Authentication",
	"1.3.6.1.5.5.7.3.3":       "Code Signing",
	"1.3.6.1.5.5.7.3.4":       "Secure Email",
	"1.3.6.1.5.5.7.3.8":       "Time Stamping",
	"1.3.6.1.5.5.7.3.9":       "OCSP Signing",
	"1.3.6.1.4.1.311.10.3.4":  "Encrypting File System",
	"1.3.6.1.4.1.311.10.3.12": "Document Signing",
	"1.3.6.1.4.1.311.20.2.1":  "Certificate Request Agent",
	"1.3.6.1.4.1.311.20.2.2":  "Smart Card Logon",
	"1.3.6.1.4.1.311.21.5":    "Private Key Archival",
	"1.3.6.1.4.1.311.21.6":    "Key Recovery Agent",
}

//formatExtension renders the extension in one of the output formats
func formatExtension(ext x509ext.Extension, format string) (string, error) {
	switch strings.ToLower(format) {
	case formatHex, "":
		return hexOut(ext.Value), nil
	case formatBase64:
		return base64.StdEncoding.EncodeToString(ext.Value), nil
	case formatPEM:
		b, err := ext.PEM()
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(b), "\n"), nil
	case formatMsgpack:
		b, err := ext.Marshal()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

//parseHex accepts plain or colon/space separated hex
func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ':', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)

	return hex.DecodeString(s)
}

//describe renders the decoded extension for humans
func describe(ap *x509ext.ApplicationPolicies) string {
	buf := bytes.NewBuffer(nil)

	buf.WriteString(fmt.Sprintf("Extension: %s\n", ap.ID()))
	buf.WriteString(fmt.Sprintf("Critical: %t\n", ap.Critical()))
	buf.WriteString("Policies:\n")
	for _, p := range ap.Policies() {
		if name, ok := knownPolicies[p]; ok {
			buf.WriteString(fmt.Sprintf("\t%s (%s)\n", p, name))
		} else {
			buf.WriteString(fmt.Sprintf("\t%s\n", p))
		}
	}

	return buf.String()
}

func hexOut(b []byte) string {
	var out string

	for _, i := range b {
		out += fmt.Sprintf("%02x:", i)
	}

	if len(out) == 0 {
		return out
	}

	return out[:len(out)-1]
}
