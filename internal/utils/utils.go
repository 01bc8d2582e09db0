package utils

import "slices"

func Map[T, U any](slice []T, f func(T) U) []U {
	if len(slice) == 0 {
		return nil
	}
	result := make([]U, len(slice))
	for i, value := range slice {
		result[i] = f(value)
	}
	return result
}

// Filter returns slice itself when every element passes.
func Filter[T any](slice []T, f func(T) bool) []T {
	for i, value := range slice {
		if !f(value) {
			result := slices.Clone(slice[:i])
			for i++; i < len(slice); i++ {
				value = slice[i]
				if f(value) {
					result = append(result, value)
				}
			}
			return result
		}
	}
	return slice
}

// FilterMap applies f to every element and keeps the results f accepted.
func FilterMap[T, U any](slice []T, f func(T) (U, bool)) []U {
	result := make([]U, 0, len(slice))
	for _, value := range slice {
		if u, ok := f(value); ok {
			result = append(result, u)
		}
	}
	return result
}

func Set[T comparable](values ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
