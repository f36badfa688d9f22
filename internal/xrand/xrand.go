// Package xrand wraps crypto/rand for the handful of random-byte needs
// respd has outside of the codec itself (shard-hash key material).
package xrand

import (
	cryptorand "crypto/rand"
	"io"
)

// Bytes fills buf with cryptographically random data.
func Bytes(buf []byte) error {
	_, err := io.ReadFull(cryptorand.Reader, buf)
	return err
}
