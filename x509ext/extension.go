package x509ext

import (
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"

	"github.com/vmihailenco/msgpack"
)

const (
	//PEMExtensionHeader PEM block header for extension records
	PEMExtensionHeader = "X509 EXTENSION"
)

//Extension a certificate extension as carried in an X.509 certificate: the
//identifying OID, the criticality flag and the DER encoded value
type Extension struct {
	ID       string `msgpack:"i"`
	Critical bool   `msgpack:"c,omitempty"`
	Value    []byte `msgpack:"v"`
}

//FromPKIX converts a parsed certificate extension into an Extension record
func FromPKIX(ext pkix.Extension) Extension {
	return Extension{
		ID:       ext.Id.String(),
		Critical: ext.Critical,
		Value:    append([]byte(nil), ext.Value...),
	}
}

//ToPKIX converts the record into the form used by crypto/x509 templates
func (e Extension) ToPKIX() (pkix.Extension, error) {
	id, err := ParseOID(e.ID)
	if err != nil {
		return pkix.Extension{}, err
	}

	return pkix.Extension{
		Id:       id,
		Critical: e.Critical,
		Value:    append([]byte(nil), e.Value...),
	}, nil
}

//ParseExtension decodes a msgpack encoded extension record
func ParseExtension(d []byte) (*Extension, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: empty extension record", ErrInvalidArgument)
	}

	ext := &Extension{}
	if err := msgpack.Unmarshal(d, ext); err != nil {
		return nil, err
	}

	if _, err := ParseOID(ext.ID); err != nil {
		return nil, err
	}

	return ext, nil
}

//ParsePEMExtension parses an extension record from a PEM block, returning
//any data following the block
func ParsePEMExtension(d []byte) (*Extension, []byte, error) {
	block, rest := pem.Decode(d)
	if block == nil || block.Type != PEMExtensionHeader {
		return nil, nil, ErrUnknownPEMType
	}

	ext, err := ParseExtension(block.Bytes)
	if err != nil {
		return nil, nil, err
	}

	return ext, rest, nil
}

//Marshal returns the extension record in msgpack encoding
func (e Extension) Marshal() ([]byte, error) {
	return msgpack.Marshal(e)
}

//PEM encodes the extension record in a PEM block
func (e Extension) PEM() ([]byte, error) {
	data, err := e.Marshal()
	if err != nil {
		return nil, err
	}

	b := &pem.Block{
		Type:  PEMExtensionHeader,
		Bytes: data,
	}

	return pem.EncodeToMemory(b), nil
}
