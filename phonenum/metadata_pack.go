package phonenum

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// packedTables is the on-wire shape of a precompiled metadata dump: the
// authored specs, not the compiled regexps, so a dump stays portable.
type packedTables struct {
	Regions    map[string]*regionSpec `msgpack:"r"`
	ShortCodes map[string]*regionSpec `msgpack:"s"`
}

// WriteMetadataMsgpack serializes the registry's tables in MessagePack
// format.
func (r *Registry) WriteMetadataMsgpack(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(packedTables{
		Regions:    r.regionSpecs,
		ShortCodes: r.shortSpecs,
	})
}

// ReadMetadataMsgpack builds a registry from tables previously written by
// WriteMetadataMsgpack.
func ReadMetadataMsgpack(rd io.Reader) (*Registry, error) {
	dec := msgpack.NewDecoder(rd)
	var tables packedTables
	if err := dec.Decode(&tables); err != nil {
		return nil, err
	}
	return buildRegistry(tables.Regions, tables.ShortCodes)
}
