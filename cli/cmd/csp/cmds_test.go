package csp

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/tcfw/appolicy/csp"
)

func TestInventory(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	_, err := inventory()
	assert.Error(t, err)

	viper.Set("providers", []map[string]interface{}{
		{"name": "Microsoft Strong Cryptographic Provider", "type": 1},
		{"name": "Microsoft Enhanced DSS and Diffie-Hellman Cryptographic Provider", "type": 13},
	})

	c, err := inventory()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, csp.DSSDH, c.At(1).Type)

	assert.NoError(t, runLookup("microsoft strong cryptographic provider"))
	assert.Error(t, runLookup("Microsoft RSA SChannel Cryptographic Provider"))
}

func TestDescribe(t *testing.T) {
	out := describe(&csp.Legacy{Name: "Microsoft Base Smart Card Crypto Provider", Type: csp.RSAFull, Hardware: true})
	assert.Equal(t, "Microsoft Base Smart Card Crypto Provider\tRSA Full\thardware=true\n", out)
}
