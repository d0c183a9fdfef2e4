package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// RemoveItem deletes the first occurrence of item, preserving order.
// It reports whether the item was present.
func RemoveItem[T comparable](slice *[]T, item T) bool {
	i := FindIndex(*slice, item)
	if i < 0 {
		return false
	}
	*slice = append((*slice)[:i], (*slice)[i+1:]...)
	return true
}
