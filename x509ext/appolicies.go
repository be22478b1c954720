package x509ext

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

const (
	//ApplicationPoliciesID dotted form of ApplicationPoliciesOID
	ApplicationPoliciesID = "1.3.6.1.4.1.311.21.10"
)

var (
	//ApplicationPoliciesOID identifies Microsoft's Application Policies
	//extension (szOID_APPLICATION_CERT_POLICIES)
	ApplicationPoliciesOID = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 311, 21, 10}
)

//ApplicationPolicies Microsoft's proprietary Application Policies extension,
//an analogue of Extended Key Usage listing policy OIDs:
//
//  ApplicationPolicies ::= SEQUENCE OF OBJECT IDENTIFIER
//
//Values are immutable once constructed; accessors hand out copies.
type ApplicationPolicies struct {
	critical bool
	raw      []byte
	policies []asn1.ObjectIdentifier
}

//policyError reports a sequence element that is not a valid OID. It matches
//both ErrMalformedExtension and ErrMalformedOID with errors.Is.
type policyError struct {
	index int
	err   error
}

func (e *policyError) Error() string {
	return fmt.Sprintf("%s: policy %d: %s", ErrMalformedExtension, e.index, e.err)
}

func (e *policyError) Unwrap() error { return e.err }

func (e *policyError) Is(target error) bool { return target == ErrMalformedExtension }

//DecodeApplicationPolicies parses the DER encoded extension value
//
//Sequence elements are read by position: the content octets of each child
//are decoded as an OID without checking the child's own tag. An empty
//SEQUENCE yields an empty policy list. raw is copied and kept as is.
func DecodeApplicationPolicies(raw []byte, critical bool) (*ApplicationPolicies, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: raw data is empty", ErrInvalidArgument)
	}

	input := cryptobyte.String(raw)
	if !input.PeekASN1Tag(cbasn1.SEQUENCE) {
		return nil, ErrMalformedExtension
	}

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: truncated sequence", ErrMalformedExtension)
	}

	if !input.Empty() {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedExtension, len(input))
	}

	policies := []asn1.ObjectIdentifier{}
	for i := 0; !seq.Empty(); i++ {
		var content cryptobyte.String
		var tag cbasn1.Tag
		if !seq.ReadAnyASN1(&content, &tag) {
			return nil, fmt.Errorf("%w: truncated policy %d", ErrMalformedExtension, i)
		}

		oid, err := decodeOIDContent(content)
		if err != nil {
			return nil, &policyError{index: i, err: err}
		}

		policies = append(policies, oid)
	}

	return &ApplicationPolicies{
		critical: critical,
		raw:      append([]byte(nil), raw...),
		policies: policies,
	}, nil
}

//NewApplicationPolicies encodes the given dotted-decimal policy OIDs
//
//Empty strings are dropped; order and duplicates are kept. policies itself
//must hold at least one entry.
func NewApplicationPolicies(policies []string, critical bool) (*ApplicationPolicies, error) {
	if len(policies) == 0 {
		return nil, fmt.Errorf("%w: no application policies", ErrInvalidArgument)
	}

	oids := make([]asn1.ObjectIdentifier, 0, len(policies))
	for _, p := range policies {
		if p == "" {
			continue
		}

		oid, err := ParseOID(p)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cbasn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		for _, oid := range oids {
			seq.AddASN1ObjectIdentifier(oid)
		}
	})

	raw, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedOID, err)
	}

	return &ApplicationPolicies{
		critical: critical,
		raw:      raw,
		policies: oids,
	}, nil
}

//ApplicationPoliciesFromExtension decodes an extension record carrying the
//Application Policies extension
func ApplicationPoliciesFromExtension(ext Extension) (*ApplicationPolicies, error) {
	if ext.ID != ApplicationPoliciesID {
		return nil, fmt.Errorf("%w: extension %s is not %s", ErrInvalidArgument, ext.ID, ApplicationPoliciesID)
	}

	return DecodeApplicationPolicies(ext.Value, ext.Critical)
}

//FindApplicationPolicies looks up and decodes the Application Policies
//extension of a parsed certificate. The bool result reports whether the
//certificate carries the extension at all.
func FindApplicationPolicies(cert *x509.Certificate) (*ApplicationPolicies, bool, error) {
	if cert == nil {
		return nil, false, fmt.Errorf("%w: nil certificate", ErrInvalidArgument)
	}

	for _, ext := range cert.Extensions {
		if !ext.Id.Equal(ApplicationPoliciesOID) {
			continue
		}

		ap, err := DecodeApplicationPolicies(ext.Value, ext.Critical)
		if err != nil {
			return nil, true, err
		}
		return ap, true, nil
	}

	return nil, false, nil
}

//ID the extension OID in dotted-decimal form
func (ap *ApplicationPolicies) ID() string { return ApplicationPoliciesID }

//Critical whether the extension is marked critical
func (ap *ApplicationPolicies) Critical() bool { return ap.critical }

//Raw a copy of the DER encoded extension value
func (ap *ApplicationPolicies) Raw() []byte {
	return append([]byte(nil), ap.raw...)
}

//Len number of policies
func (ap *ApplicationPolicies) Len() int { return len(ap.policies) }

//Policies the policy OIDs in dotted-decimal form, in encoding order
func (ap *ApplicationPolicies) Policies() []string {
	out := make([]string, 0, len(ap.policies))
	for _, oid := range ap.policies {
		out = append(out, oid.String())
	}
	return out
}

//PolicyOIDs a deep copy of the policy OIDs
func (ap *ApplicationPolicies) PolicyOIDs() []asn1.ObjectIdentifier {
	out := make([]asn1.ObjectIdentifier, 0, len(ap.policies))
	for _, oid := range ap.policies {
		out = append(out, append(asn1.ObjectIdentifier(nil), oid...))
	}
	return out
}

//Contains reports whether oid is one of the policies
func (ap *ApplicationPolicies) Contains(oid asn1.ObjectIdentifier) bool {
	for _, p := range ap.policies {
		if p.Equal(oid) {
			return true
		}
	}
	return false
}

//Extension the generic extension record for this value
func (ap *ApplicationPolicies) Extension() Extension {
	return Extension{
		ID:       ApplicationPoliciesID,
		Critical: ap.critical,
		Value:    ap.Raw(),
	}
}

//PKIX the extension in the form accepted by x509.Certificate.ExtraExtensions
func (ap *ApplicationPolicies) PKIX() pkix.Extension {
	return pkix.Extension{
		Id:       append(asn1.ObjectIdentifier(nil), ApplicationPoliciesOID...),
		Critical: ap.critical,
		Value:    ap.Raw(),
	}
}
