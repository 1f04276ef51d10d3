package utils

// Map returns a new slice with the same length as src, but with values transformed by f
// if src is nil, returns nil
func Map[T, U any](src []T, f func(T) U) []U {
	if src == nil {
		return nil
	}
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// GroupBy buckets values by key, keeping the order in which keys are first seen.
func GroupBy[T any, K comparable](src []T, key func(T) K) ([]K, map[K][]T) {
	keys := make([]K, 0)
	groups := make(map[K][]T)
	for _, value := range src {
		k := key(value)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], value)
	}
	return keys, groups
}
