package resource

import "github.com/ben0x539/comik"

// Key identifies a page resource: the archive it came from and its entry
// name within that archive.
type Key struct {
	Archive string
	Name    string
}

// KeyOf returns the key for a page.
func KeyOf(p comik.PageProvider) Key {
	return Key{Archive: p.Source(), Name: p.FileName()}
}

// String returns "archive:name".
func (k Key) String() string {
	return k.Archive + ":" + k.Name
}

// flightKey is unambiguous even when names contain ':'.
func (k Key) flightKey() string {
	return k.Archive + "\x00" + k.Name
}
