package csp

import (
	"fmt"

	"github.com/spf13/viper"
)

//DefaultInventoryKey config key holding the provider inventory
const DefaultInventoryKey = "providers"

//LoadInventory builds a collection from a list of providers held under key
//in v, e.g.
//
//  providers:
//    - name: Microsoft Enhanced RSA and AES Cryptographic Provider
//      type: 24
func LoadInventory(v *viper.Viper, key string) (*Collection, error) {
	entries := []*Legacy{}
	if err := v.UnmarshalKey(key, &entries); err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	for i, e := range entries {
		if e == nil || e.Name == "" {
			return nil, fmt.Errorf("reading %s: provider %d has no name", key, i)
		}
	}

	return NewCollection(entries...), nil
}
