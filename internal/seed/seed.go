// Package seed derives generator seeds for unseeded use.
package seed

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Entropy returns a seed drawn from the operating system's entropy source.
// When the entropy source is unavailable it falls back to the wall clock.
func Entropy() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
