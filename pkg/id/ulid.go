// Package id provides sortable request ID generation.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewULID generates a ULID (Universally Unique Lexicographically Sortable
// Identifier): 10 characters of 48-bit millisecond timestamp followed by
// 16 characters of 80-bit randomness. IDs sort by creation time, which
// makes request IDs greppable in chronological order.
func NewULID() string {
	ms := uint64(time.Now().UnixMilli())

	random := make([]byte, 10)
	if _, err := rand.Read(random); err != nil {
		// Degraded but functional: fall back to time-based entropy.
		binary.BigEndian.PutUint64(random[:8], uint64(time.Now().UnixNano()))
	}

	var ulid [26]byte

	// 48-bit timestamp becomes 10 base32 chars, most significant first.
	for i := 9; i >= 0; i-- {
		ulid[i] = crockfordBase32[ms&0x1F]
		ms >>= 5
	}

	// 80 random bits become 16 base32 chars, consumed as a rolling bit buffer.
	var acc uint16
	bits := 0
	pos := 10
	for _, b := range random {
		acc = acc<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			ulid[pos] = crockfordBase32[(acc>>bits)&0x1F]
			pos++
		}
	}

	return string(ulid[:])
}
