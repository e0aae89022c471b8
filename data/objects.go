package data

import (
	"sort"
	"strings"
)

// Object is a JSON-like object.
type Object = map[string]interface{}

// Entry is a key/value pair of an object.
type Entry struct {
	Key   string
	Value interface{}
}

// Decompose returns key and value of an entry.
func (e Entry) Decompose() (string, interface{}) {
	return e.Key, e.Value
}

// SearchBy selects whether object searches compare keys or values.
type SearchBy int8

// Search targets
const (
	ByKey SearchBy = iota
	ByValue
)

// unsafeKeys are never merged into a target.
var unsafeKeys = map[string]bool{"__proto__": true, "constructor": true}

// MergeObjects merges sources into target, one after the other, and returns
// target. Nested objects are merged recursively; any other value, including
// slices, replaces the value of target. A nil target is replaced by a new
// object.
func MergeObjects(target Object, sources ...Object) Object {
	if target == nil {
		target = make(Object)
	}
	for _, src := range sources {
		for k, v := range src {
			if unsafeKeys[k] {
				tracer().Infof("merge skips key %q", k)
				continue
			}
			if sub, ok := v.(Object); ok {
				t, ok := target[k].(Object)
				if !ok {
					t = make(Object, len(sub))
				}
				target[k] = MergeObjects(t, sub)
				continue
			}
			target[k] = v
		}
	}
	return target
}

// Pick returns a new object with the entries of obj for the given keys.
func Pick(obj Object, keys ...string) Object {
	r := make(Object, len(keys))
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			r[k] = v
		}
	}
	return r
}

// Omit returns a shallow copy of obj without the given keys.
func Omit(obj Object, keys ...string) Object {
	r := make(Object, len(obj))
	for k, v := range obj {
		r[k] = v
	}
	for _, k := range keys {
		delete(r, k)
	}
	return r
}

// Get returns the value at a dot-separated path, e.g. "user.address.city".
func Get(obj Object, path string) (interface{}, bool) {
	var cur interface{} = obj
	for _, part := range strings.Split(path, ".") {
		o, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		if cur, ok = o[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set sets the value at a dot-separated path. Missing intermediate objects
// are created; intermediate values which are not objects are replaced.
func Set(obj Object, path string, value interface{}) {
	if obj == nil {
		return
	}
	parts := strings.Split(path, ".")
	cur := obj
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(Object)
		if !ok {
			next = make(Object)
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}

// Entries returns the entries of obj, ordered by key.
func Entries(obj Object) []Entry {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: obj[k]}
	}
	return entries
}

// EntryAt returns the entry at position i of the key-ordered entries.
// Negative positions count from the back.
func EntryAt(obj Object, i int) (Entry, bool) {
	entries := Entries(obj)
	if i < 0 {
		i += len(entries)
	}
	if i < 0 || i >= len(entries) {
		return Entry{}, false
	}
	return entries[i], true
}

func (e Entry) matches(query interface{}, mode MatchMode, by SearchBy) bool {
	if by == ByValue {
		return mode.Match(e.Value, query)
	}
	return mode.Match(e.Key, query)
}

// FirstEntry returns the first entry, in key order, whose key (or value)
// matches query.
func FirstEntry(obj Object, query interface{}, mode MatchMode, by SearchBy) (Entry, bool) {
	for _, e := range Entries(obj) {
		if e.matches(query, mode, by) {
			return e, true
		}
	}
	return Entry{}, false
}

// LastEntry returns the last entry, in key order, whose key (or value)
// matches query.
func LastEntry(obj Object, query interface{}, mode MatchMode, by SearchBy) (Entry, bool) {
	entries := Entries(obj)
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].matches(query, mode, by) {
			return entries[i], true
		}
	}
	return Entry{}, false
}

// FindKeys returns the sorted keys of obj matching query.
func FindKeys(obj Object, query interface{}, mode MatchMode) []string {
	var keys []string
	for _, e := range Entries(obj) {
		if e.matches(query, mode, ByKey) {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// FindValues returns the values of obj matching query, in key order.
func FindValues(obj Object, query interface{}, mode MatchMode) []interface{} {
	var values []interface{}
	for _, e := range Entries(obj) {
		if e.matches(query, mode, ByValue) {
			values = append(values, e.Value)
		}
	}
	return values
}
