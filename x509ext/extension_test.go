package x509ext

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionMarshal(t *testing.T) {
	ext := Extension{ID: ApplicationPoliciesID, Critical: true, Value: serverAuthDER}

	b, err := ext.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	readback, err := ParseExtension(b)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, ext, *readback)
}

func TestParseExtensionInvalid(t *testing.T) {
	_, err := ParseExtension(nil)
	assert.Error(t, err)

	b, err := Extension{ID: "bogus", Value: serverAuthDER}.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	_, err = ParseExtension(b)
	assert.ErrorIs(t, err, ErrMalformedOID)
}

func TestExtensionPEM(t *testing.T) {
	ext := Extension{ID: ApplicationPoliciesID, Value: twoPoliciesDER}

	pem, err := ext.PEM()
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, strings.HasPrefix(string(pem), "-----BEGIN X509 EXTENSION"))

	additional := []byte(`ADDITIONAL data`)
	pem = append(pem, additional...)

	readback, rest, err := ParsePEMExtension(pem)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, additional, rest)
	assert.Equal(t, ext, *readback)
}

func TestParsePEMExtensionWrongType(t *testing.T) {
	_, _, err := ParsePEMExtension([]byte("-----BEGIN CERTIFICATE-----\nMAA=\n-----END CERTIFICATE-----\n"))
	assert.Equal(t, ErrUnknownPEMType, err)

	_, _, err = ParsePEMExtension([]byte("no pem here"))
	assert.Equal(t, ErrUnknownPEMType, err)
}

func TestExtensionPKIX(t *testing.T) {
	pe := pkix.Extension{
		Id:       asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 311, 21, 10},
		Critical: true,
		Value:    serverAuthDER,
	}

	ext := FromPKIX(pe)
	assert.Equal(t, Extension{ID: ApplicationPoliciesID, Critical: true, Value: serverAuthDER}, ext)

	back, err := ext.ToPKIX()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, pe, back)

	_, err = Extension{ID: "1"}.ToPKIX()
	assert.ErrorIs(t, err, ErrMalformedOID)
}
