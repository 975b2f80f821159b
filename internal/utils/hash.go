package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// digestPool is a package-level pool of reusable xxhash digests.
var digestPool = sync.Pool{
	New: func() any {
		return xxhash.New()
	},
}

// HashJSON streams the JSON encoding of v into a pooled digest and returns
// the hex digest. Values that encode to the same JSON hash to the same
// string.
//
// Behavior:
//   - Retrieves a *xxhash.Digest from sync.Pool
//   - Resets it and encodes v straight into it, without buffering the body
//   - Returns the digest to the pool
func HashJSON(v any) (string, error) {
	d := digestPool.Get().(*xxhash.Digest)
	d.Reset()
	defer digestPool.Put(d)

	if err := json.NewEncoder(d).Encode(v); err != nil {
		return "", fmt.Errorf("error encoding value for hashing: %w", err)
	}

	return formatDigest(d.Sum64()), nil
}

func formatDigest(sum uint64) string {
	s := strconv.FormatUint(sum, 16)
	if len(s) < 16 {
		s = "0000000000000000"[:16-len(s)] + s
	}
	return s
}
