package x509ext

import "errors"

var (
	//ErrInvalidArgument a required input was missing or empty
	ErrInvalidArgument = errors.New("invalid argument")
	//ErrMalformedExtension the data is not a valid instance of the extension
	ErrMalformedExtension = errors.New("the data is invalid")
	//ErrMalformedOID an object identifier could not be parsed or encoded
	ErrMalformedOID = errors.New("malformed object identifier")
	//ErrUnknownPEMType unknown PEM block header type
	ErrUnknownPEMType = errors.New("unknown PEM block header type")
)
