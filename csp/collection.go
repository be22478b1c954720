package csp

import (
	"errors"
	"strings"

	"github.com/vmihailenco/msgpack"
)

var (
	//ErrIndexOutOfRange copy index outside of the destination
	ErrIndexOutOfRange = errors.New("index is out of range")
	//ErrInsufficientSpace destination too small for the collection
	ErrInsufficientSpace = errors.New("destination is too small")
)

//Collection an ordered list of provider descriptors. It is not safe for
//concurrent modification.
type Collection struct {
	entries []*Legacy
}

//NewCollection creates a collection holding entries in the given order
func NewCollection(entries ...*Legacy) *Collection {
	c := &Collection{}
	for _, e := range entries {
		c.Add(e)
	}
	return c
}

//ParseCollection decodes a msgpack encoded collection
func ParseCollection(d []byte) (*Collection, error) {
	entries := []*Legacy{}
	if err := msgpack.Unmarshal(d, &entries); err != nil {
		return nil, err
	}
	return &Collection{entries: entries}, nil
}

//Add appends entry and returns its index
func (c *Collection) Add(entry *Legacy) int {
	c.entries = append(c.entries, entry)
	return len(c.entries) - 1
}

//Len number of entries
func (c *Collection) Len() int {
	return len(c.entries)
}

//At returns the entry at index i
func (c *Collection) At(i int) *Legacy {
	return c.entries[i]
}

//ByName returns the first entry whose name matches, ignoring case, or nil
func (c *Collection) ByName(name string) *Legacy {
	for _, e := range c.entries {
		if e != nil && strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

//All a copy of the entries in insertion order
func (c *Collection) All() []*Legacy {
	return append([]*Legacy(nil), c.entries...)
}

//CopyTo copies the entries into dst starting at index
func (c *Collection) CopyTo(dst []*Legacy, index int) error {
	if index < 0 || index >= len(dst) {
		return ErrIndexOutOfRange
	}
	if index+len(c.entries) > len(dst) {
		return ErrInsufficientSpace
	}

	copy(dst[index:], c.entries)
	return nil
}

//Marshal returns the collection in msgpack encoding
func (c *Collection) Marshal() ([]byte, error) {
	return msgpack.Marshal(c.entries)
}

//Enumerator returns an enumerator positioned before the first entry
func (c *Collection) Enumerator() *Enumerator {
	return &Enumerator{entries: c, current: -1}
}

//Enumerator steps through a Collection. It is only valid while the
//collection is unchanged.
type Enumerator struct {
	entries *Collection
	current int
}

//MoveNext advances to the next entry, returning false once past the end
func (e *Enumerator) MoveNext() bool {
	if e.current >= e.entries.Len()-1 {
		return false
	}
	e.current++
	return true
}

//Current the entry at the enumerator's position, nil before the first
//MoveNext
func (e *Enumerator) Current() *Legacy {
	if e.current < 0 || e.current >= e.entries.Len() {
		return nil
	}
	return e.entries.At(e.current)
}

//Reset moves the enumerator back before the first entry
func (e *Enumerator) Reset() {
	e.current = -1
}
