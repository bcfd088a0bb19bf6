package crud

// DefaultFirstKey seeds the key sequence of an empty collection.
const DefaultFirstKey = 1

// NextKey returns max(keys)+1, or first when items is empty.
func NextKey[E any](items []E, key func(E) int, first int) int {
	if len(items) == 0 {
		return first
	}
	maxKey := key(items[0])
	for _, it := range items[1:] {
		if k := key(it); k > maxKey {
			maxKey = k
		}
	}
	return maxKey + 1
}
