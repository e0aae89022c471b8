package data

// Chunk splits s into slices of length size. The last chunk may be shorter.
// A size < 1 yields no chunks.
func Chunk[T any](s []T, size int) [][]T {
	if size < 1 {
		return nil
	}
	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for len(s) > 0 {
		n := size
		if n > len(s) {
			n = len(s)
		}
		chunks = append(chunks, append([]T(nil), s[:n]...))
		s = s[n:]
	}
	return chunks
}

// MergeArray concatenates slices into a new slice.
func MergeArray[T any](slices ...[]T) []T {
	var n int
	for _, s := range slices {
		n += len(s)
	}
	merged := make([]T, 0, n)
	for _, s := range slices {
		merged = append(merged, s...)
	}
	return merged
}

// position normalizes a possibly negative index into [0…n].
func position(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Add returns a copy of s with item inserted at index, or appended if no
// index is given. Negative indices count from the back: -1 inserts before
// the last element.
func Add[T any](s []T, item T, index ...int) []T {
	at := len(s)
	if len(index) > 0 {
		at = position(index[0], len(s))
	}
	r := make([]T, 0, len(s)+1)
	r = append(r, s[:at]...)
	r = append(r, item)
	return append(r, s[at:]...)
}

// RemoveAt returns a copy of s without the element at index. Negative
// indices count from the back. An index out of range removes nothing.
func RemoveAt[T any](s []T, index int) []T {
	if index < 0 {
		index += len(s)
	}
	r := append([]T(nil), s...)
	if index < 0 || index >= len(s) {
		return r
	}
	return append(r[:index], r[index+1:]...)
}

// RemoveFirst returns a copy of s without its first element.
func RemoveFirst[T any](s []T) []T {
	return RemoveAt(s, 0)
}

// RemoveLast returns a copy of s without its last element.
func RemoveLast[T any](s []T) []T {
	return RemoveAt(s, -1)
}

// RemoveByMatch returns a copy of s without the elements matching query.
func RemoveByMatch[T any](s []T, query interface{}, mode MatchMode, key ...string) []T {
	r := make([]T, 0, len(s))
	for _, x := range s {
		if !matches(x, query, mode, key) {
			r = append(r, x)
		}
	}
	return r
}

// FindAt returns the index of the first element matching query, or -1.
func FindAt[T any](s []T, query interface{}, mode MatchMode, key ...string) int {
	for i, x := range s {
		if matches(x, query, mode, key) {
			return i
		}
	}
	return -1
}

// FindAll returns all elements matching query.
func FindAll[T any](s []T, query interface{}, mode MatchMode, key ...string) []T {
	var r []T
	for _, x := range s {
		if matches(x, query, mode, key) {
			r = append(r, x)
		}
	}
	return r
}

// FindFirst returns the first element matching query.
func FindFirst[T any](s []T, query interface{}, mode MatchMode, key ...string) (T, bool) {
	if i := FindAt(s, query, mode, key...); i >= 0 {
		return s[i], true
	}
	var zero T
	return zero, false
}

// FindLast returns the last element matching query.
func FindLast[T any](s []T, query interface{}, mode MatchMode, key ...string) (T, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if matches(s[i], query, mode, key) {
			return s[i], true
		}
	}
	var zero T
	return zero, false
}

// FindByMatch returns the index of the first element matching query.
func FindByMatch[T any](s []T, query interface{}, mode MatchMode, key ...string) (int, bool) {
	i := FindAt(s, query, mode, key...)
	return i, i >= 0
}
