package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the HTTP header that carries the hex HMAC-SHA256 of the
// request body.
const HashHeader = "HashSHA256"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers.
// Each hasher in the pool is configured with the provided hash key.
//
// Both the client adapter (signing request bodies) and the server
// middleware (verifying them) call it once at startup with the shared key.
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over the given byte slice
// using a hasher pulled from the global hasher pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex returns the hex encoding of [Hash] over data.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// VerifyHash reports whether hexSum is the HMAC-SHA256 of data under the
// pool key. The comparison is constant-time.
func VerifyHash(data []byte, hexSum string) bool {
	sum, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), sum)
}
