package x509ext

import (
	"encoding/asn1"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOID(t *testing.T) {
	tests := map[string]asn1.ObjectIdentifier{
		"1.3.6.1.5.5.7.3.1":     {1, 3, 6, 1, 5, 5, 7, 3, 1},
		"1.3.6.1.4.1.311.21.10": {1, 3, 6, 1, 4, 1, 311, 21, 10},
		"0.0":                   {0, 0},
		"2.999.3":               {2, 999, 3},
		"1.39":                  {1, 39},
		"1.2.2147483647":        {1, 2, 2147483647},
	}

	for s, want := range tests {
		oid, err := ParseOID(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, want, oid, s)
			assert.Equal(t, s, oid.String())
		}
	}
}

func TestParseOIDInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"1",
		"1.",
		".1.2",
		"1..2",
		"1.2.a",
		"1.-2",
		"1.+2",
		"3.1",
		"0.40",
		"1.40",
		"1.02",
		"1.2.2147483648",
		"1.2.99999999999999999999",
		" 1.2",
	} {
		_, err := ParseOID(s)
		assert.True(t, errors.Is(err, ErrMalformedOID), "%q: %v", s, err)
	}
}

func TestDecodeOIDContent(t *testing.T) {
	oid, err := decodeOIDContent([]byte{0x2b, 0x06, 0x01, 0x04, 0x01, 0x82, 0x37, 0x15, 0x0a})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "1.3.6.1.4.1.311.21.10", oid.String())

	oid, err = decodeOIDContent([]byte{0x88, 0x37, 0x03})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "2.999.3", oid.String())
}

func TestDecodeOIDContentInvalid(t *testing.T) {
	for _, content := range [][]byte{
		nil,
		{0x80},
		{0x2b, 0x86},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	} {
		_, err := decodeOIDContent(content)
		assert.True(t, errors.Is(err, ErrMalformedOID), "% x", content)
	}
}
