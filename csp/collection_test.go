package csp

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func testCollection() *Collection {
	return NewCollection(
		&Legacy{Name: "Microsoft Base Cryptographic Provider v1.0", Type: RSAFull},
		&Legacy{Name: "Microsoft Enhanced RSA and AES Cryptographic Provider", Type: RSAAES},
		&Legacy{Name: "Microsoft Base Smart Card Crypto Provider", Type: RSAFull, Hardware: true},
	)
}

func TestCollectionAdd(t *testing.T) {
	c := &Collection{}
	assert.Equal(t, 0, c.Len())

	assert.Equal(t, 0, c.Add(&Legacy{Name: "a"}))
	assert.Equal(t, 1, c.Add(&Legacy{Name: "b"}))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "b", c.At(1).Name)
}

func TestCollectionByName(t *testing.T) {
	c := testCollection()

	e := c.ByName("microsoft enhanced rsa and aes cryptographic provider")
	if assert.NotNil(t, e) {
		assert.Equal(t, RSAAES, e.Type)
	}

	assert.Nil(t, c.ByName("Microsoft Strong Cryptographic Provider"))

	c.Add(&Legacy{Name: "MICROSOFT BASE CRYPTOGRAPHIC PROVIDER V1.0", Type: DSS})
	assert.Equal(t, RSAFull, c.ByName("Microsoft Base Cryptographic Provider v1.0").Type)
}

func TestCollectionCopyTo(t *testing.T) {
	c := testCollection()

	dst := make([]*Legacy, 4)
	assert.NoError(t, c.CopyTo(dst, 1))
	assert.Nil(t, dst[0])
	assert.Equal(t, c.All(), dst[1:])

	assert.Equal(t, ErrIndexOutOfRange, c.CopyTo(dst, -1))
	assert.Equal(t, ErrIndexOutOfRange, c.CopyTo(dst, 4))
	assert.Equal(t, ErrInsufficientSpace, c.CopyTo(dst, 2))
}

func TestCollectionAllIsCopy(t *testing.T) {
	c := testCollection()

	all := c.All()
	all[0] = nil

	assert.NotNil(t, c.At(0))
}

func TestEnumerator(t *testing.T) {
	c := testCollection()
	e := c.Enumerator()

	assert.Nil(t, e.Current())

	names := []string{}
	for e.MoveNext() {
		names = append(names, e.Current().Name)
	}

	assert.Equal(t, []string{
		"Microsoft Base Cryptographic Provider v1.0",
		"Microsoft Enhanced RSA and AES Cryptographic Provider",
		"Microsoft Base Smart Card Crypto Provider",
	}, names)
	assert.False(t, e.MoveNext())

	e.Reset()
	assert.Nil(t, e.Current())
	assert.True(t, e.MoveNext())
	assert.Equal(t, c.At(0), e.Current())
}

func TestEnumeratorEmpty(t *testing.T) {
	e := NewCollection().Enumerator()
	assert.False(t, e.MoveNext())
	assert.Nil(t, e.Current())
}

func TestCollectionMarshal(t *testing.T) {
	c := testCollection()

	b, err := c.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	readback, err := ParseCollection(b)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, c.All(), readback.All())
}

func TestProviderTypeString(t *testing.T) {
	assert.Equal(t, "RSA AES", RSAAES.String())
	assert.Equal(t, "unknown (99)", ProviderType(99).String())
}

func TestLoadInventory(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(strings.NewReader(`
providers:
  - name: Microsoft Base Cryptographic Provider v1.0
    type: 1
  - name: Microsoft Base Smart Card Crypto Provider
    type: 1
    hardware: true
`))
	if err != nil {
		t.Fatal(err)
	}

	c, err := LoadInventory(v, DefaultInventoryKey)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, RSAFull, c.At(1).Type)
	assert.True(t, c.ByName("microsoft base smart card crypto provider").Hardware)
}

func TestLoadInventoryMissingName(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(strings.NewReader(`
providers:
  - type: 1
`))
	if err != nil {
		t.Fatal(err)
	}

	_, err = LoadInventory(v, DefaultInventoryKey)
	assert.Error(t, err)
}
