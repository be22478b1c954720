package x509ext

import (
	"encoding/asn1"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

//ParseOID parses a dotted-decimal object identifier such as 1.3.6.1.5.5.7.3.1
//
//The first arc must be 0, 1 or 2 and the second arc must be below 40 unless
//the first is 2. Arcs are limited to 31 bits, the same bound the decoder uses.
func ParseOID(s string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least two arcs", ErrMalformedOID, s)
	}

	oid := make(asn1.ObjectIdentifier, 0, len(parts))
	for _, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" || (len(p) > 1 && p[0] == '0') {
			return nil, fmt.Errorf("%w: %q has an invalid arc %q", ErrMalformedOID, s, p)
		}

		arc, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q arc %q: %s", ErrMalformedOID, s, p, err)
		}
		oid = append(oid, int(arc))
	}

	if oid[0] > 2 || (oid[0] < 2 && oid[1] >= 40) || oid[1] > math.MaxInt32-80 {
		return nil, fmt.Errorf("%w: %q has invalid leading arcs", ErrMalformedOID, s)
	}

	return oid, nil
}

//decodeOIDContent decodes the content octets of an OBJECT IDENTIFIER
//(X.690 8.19): the first subidentifier packs the first two arcs as 40*X+Y,
//the rest are base-128 with the high bit marking continuation.
func decodeOIDContent(content []byte) (asn1.ObjectIdentifier, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty content", ErrMalformedOID)
	}

	//Rebuild the TLV so cryptobyte's overflow and minimal-encoding checks apply
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cbasn1.OBJECT_IDENTIFIER, func(c *cryptobyte.Builder) {
		c.AddBytes(content)
	})
	tlv, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedOID, err)
	}

	var oid asn1.ObjectIdentifier
	s := cryptobyte.String(tlv)
	if !s.ReadASN1ObjectIdentifier(&oid) || !s.Empty() {
		return nil, fmt.Errorf("%w: invalid content % x", ErrMalformedOID, content)
	}

	return oid, nil
}
