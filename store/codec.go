package store

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hamcircuit/hamilton"
)

// entryVersion is the first byte of every stored value.
const entryVersion = 1

// entry is one stored outcome. vertices and edges guard against
// fingerprint collisions between graphs of different size.
type entry struct {
	vertices int
	edges    int
	result   *hamilton.Result
}

// encodeEntry layout:
//
//	version(1) found(1) uvarint(vertices) uvarint(edges) varint(expansions)
//	uvarint(len(circuit)) varint(circuit[i])...
func encodeEntry(e entry) []byte {
	buf := make([]byte, 0, 16+len(e.result.Circuit)*binary.MaxVarintLen32)
	buf = append(buf, entryVersion)
	if e.result.Found {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.AppendUvarint(buf, uint64(e.vertices))
	buf = binary.AppendUvarint(buf, uint64(e.edges))
	buf = binary.AppendVarint(buf, e.result.Expansions)
	buf = binary.AppendUvarint(buf, uint64(len(e.result.Circuit)))
	for _, v := range e.result.Circuit {
		buf = binary.AppendVarint(buf, int64(v))
	}

	return buf
}

func decodeEntry(buf []byte) (entry, error) {
	if len(buf) < 2 || buf[0] != entryVersion {
		return entry{}, errors.Wrap(ErrCorruptEntry, "unknown version")
	}
	found := buf[1] == 1
	d := decoder{buf: buf[2:]}

	e := entry{result: &hamilton.Result{Found: found}}
	e.vertices = int(d.uvarint())
	e.edges = int(d.uvarint())
	e.result.Expansions = d.varint()
	n := d.uvarint()
	if d.err == nil && n > uint64(len(d.buf)) {
		d.err = errors.Wrap(ErrCorruptEntry, "circuit length exceeds value")
	}
	if d.err == nil && n > 0 {
		e.result.Circuit = make([]int, n)
		for i := range e.result.Circuit {
			e.result.Circuit[i] = int(d.varint())
		}
	}
	if d.err == nil && len(d.buf) != 0 {
		d.err = errors.Wrap(ErrCorruptEntry, "trailing bytes")
	}
	if d.err == nil && found != (len(e.result.Circuit) > 0) {
		d.err = errors.Wrap(ErrCorruptEntry, "found flag disagrees with circuit")
	}

	return e, d.err
}

// decoder reads varints from buf, latching the first error.
type decoder struct {
	buf []byte
	err error
}

func (d *decoder) uvarint() uint64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Uvarint(d.buf)
	if n <= 0 {
		d.err = errors.Wrap(ErrCorruptEntry, "truncated uvarint")

		return 0
	}
	d.buf = d.buf[n:]

	return v
}

func (d *decoder) varint() int64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Varint(d.buf)
	if n <= 0 {
		d.err = errors.Wrap(ErrCorruptEntry, "truncated varint")

		return 0
	}
	d.buf = d.buf[n:]

	return v
}
