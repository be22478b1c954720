package csp

import "fmt"

//ProviderType legacy CryptoAPI provider type (PROV_* in wincrypt.h)
type ProviderType uint32

const (
	//UnknownProvider unknown or not set
	UnknownProvider ProviderType = 0
	//RSAFull PROV_RSA_FULL
	RSAFull ProviderType = 1
	//RSASig PROV_RSA_SIG
	RSASig ProviderType = 2
	//DSS PROV_DSS
	DSS ProviderType = 3
	//Fortezza PROV_FORTEZZA
	Fortezza ProviderType = 4
	//MSExchange PROV_MS_EXCHANGE
	MSExchange ProviderType = 5
	//SSL PROV_SSL
	SSL ProviderType = 6
	//RSASChannel PROV_RSA_SCHANNEL
	RSASChannel ProviderType = 12
	//DSSDH PROV_DSS_DH
	DSSDH ProviderType = 13
	//DHSChannel PROV_DH_SCHANNEL
	DHSChannel ProviderType = 18
	//RNG PROV_RNG
	RNG ProviderType = 21
	//RSAAES PROV_RSA_AES
	RSAAES ProviderType = 24
)

func (t ProviderType) String() string {
	switch t {
	case RSAFull:
		return "RSA Full"
	case RSASig:
		return "RSA Signature"
	case DSS:
		return "DSS"
	case Fortezza:
		return "Fortezza"
	case MSExchange:
		return "MS Exchange"
	case SSL:
		return "SSL"
	case RSASChannel:
		return "RSA SChannel"
	case DSSDH:
		return "DSS DH"
	case DHSChannel:
		return "DH SChannel"
	case RNG:
		return "RNG"
	case RSAAES:
		return "RSA AES"
	default:
		return fmt.Sprintf("unknown (%d)", uint32(t))
	}
}

//Legacy describes an installed legacy cryptographic service provider
type Legacy struct {
	Name     string       `msgpack:"n" mapstructure:"name"`
	Type     ProviderType `msgpack:"t" mapstructure:"type"`
	Hardware bool         `msgpack:"h,omitempty" mapstructure:"hardware"`
}
