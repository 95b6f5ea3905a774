package chash

// Hash computes the Jenkins one-at-a-time hash of key.
//
// The result depends only on the key bytes, so slot addresses are
// reproducible across runs.
func Hash(key []byte) uint32 {
	var hash uint32
	for _, b := range key {
		hash += uint32(b)
		hash += hash << 10
		hash ^= hash >> 6
	}
	return finalize(hash)
}

// HashString is Hash for a string key, without converting it to a slice.
func HashString(key string) uint32 {
	var hash uint32
	for i := 0; i < len(key); i++ {
		hash += uint32(key[i])
		hash += hash << 10
		hash ^= hash >> 6
	}
	return finalize(hash)
}

func finalize(hash uint32) uint32 {
	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return hash
}
