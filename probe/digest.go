package probe

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// digest derives the circuit seed and identifying fragment from input
// bytes. The seed is the first 32 bits of the SHA-256 digest read
// big-endian; the fragment is the first 16 hex characters of the same
// digest.
func digest(data []byte) (seed int64, fragment string) {
	sum := sha256.Sum256(data)
	seed = int64(binary.BigEndian.Uint32(sum[:4]))
	fragment = hex.EncodeToString(sum[:8])
	return seed, fragment
}
