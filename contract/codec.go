package contract

import (
	"encoding/binary"

	"bingopot/sdk"
)

// Binary state codec helpers. State values are raw bytes stored as
// strings; every record is written append-style and read back through
// rd, which aborts on any overrun or trailing garbage.

// rd is a binary reader over a byte slice with big-endian integer reads
// and safety checks.
type rd struct {
	chain sdk.Chain
	b     []byte
	i     int
}

// need ensures that n bytes are available from the current position.
func (r *rd) need(n int) {
	if r.i+n > len(r.b) {
		r.chain.Abort("decode overflow")
	}
}

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u32() uint32 {
	r.need(4)
	v := binary.BigEndian.Uint32(r.b[r.i : r.i+4])
	r.i += 4
	return v
}

func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

// bytes reads n raw bytes from the buffer.
func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

// str reads a 1-byte length-prefixed string.
func (r *rd) str8() string {
	l := int(r.u8())
	return string(r.bytes(l))
}

// mustEnd verifies that the reader consumed all bytes exactly.
func (r *rd) mustEnd() {
	if r.i != len(r.b) {
		r.chain.Abort("trailing bytes")
	}
}

// ---------- Writers ----------

func appendU32BE(dst []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(dst, tmp[:]...)
}

func appendU64BE(dst []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(dst, tmp[:]...)
}

func appendStr8(chain sdk.Chain, dst []byte, s string) []byte {
	ensure(chain, len(s) <= 255, "string too long")
	dst = append(dst, byte(len(s)))
	return append(dst, s...)
}
