package cache

import "hash/fnv"

// HashStrings computes an FNV-1a hash over the given parts.
// Each part is preceded by its length so that ("ab","c") and ("a","bc")
// hash differently.
func HashStrings(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		length := uint64(len(p))
		h.Write([]byte{
			byte(length), byte(length >> 8), byte(length >> 16), byte(length >> 24),
			byte(length >> 32), byte(length >> 40), byte(length >> 48), byte(length >> 56),
		})
		h.Write([]byte(p))
	}
	return h.Sum64()
}
