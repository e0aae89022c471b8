/*
Package data implements small helpers for slices, string-keyed maps and
function call rates.

Slice helpers never modify their input; they return new slices. Search
helpers compare values according to a MatchMode, on the string form of
the values and without regard to case:

    i, ok := data.FindByMatch([]string{"Admin", "User"}, "adm", data.Contains)
    // i == 0, ok == true

Search helpers may be given a key. For slices of structs the key names a
field, for slices of maps it names an entry:

    admins := data.FindAll(users, "admin", data.Exact, "Role")

Maps of type map[string]interface{} serve as objects. Functions returning
entries of objects order them by key, as Go does not define an order of
map entries.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package data

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jbase.data'.
func tracer() tracing.Trace {
	return tracing.Select("jbase.data")
}

// MatchMode is the comparison strategy of search helpers.
type MatchMode int8

// Match modes
const (
	Exact MatchMode = iota
	Contains
	StartsWith
	EndsWith
)

var matchModeNames = [...]string{"exact", "contains", "startsWith", "endsWith"}

func (m MatchMode) String() string {
	if m < 0 || int(m) >= len(matchModeNames) {
		return fmt.Sprintf("MatchMode(%d)", m)
	}
	return matchModeNames[m]
}

// ParseMatchMode returns the match mode for a name ("exact", "contains",
// "startsWith", "endsWith"; names are accepted in any case). An empty name
// selects Exact.
func ParseMatchMode(name string) (MatchMode, error) {
	if name == "" {
		return Exact, nil
	}
	for i, n := range matchModeNames {
		if strings.EqualFold(n, name) {
			return MatchMode(i), nil
		}
	}
	return Exact, fmt.Errorf("unknown match mode %q", name)
}

// Match reports whether value matches query under mode m.
func (m MatchMode) Match(value, query interface{}) bool {
	if value == nil {
		return false
	}
	v := strings.ToLower(fmt.Sprint(value))
	q := strings.ToLower(fmt.Sprint(query))
	switch m {
	case Contains:
		return strings.Contains(v, q)
	case StartsWith:
		return strings.HasPrefix(v, q)
	case EndsWith:
		return strings.HasSuffix(v, q)
	}
	return v == q
}

// field returns the value under key of x, which may be a struct, a map with
// string keys, or a pointer to either. Without a key, x itself is returned.
func field(x interface{}, key []string) (interface{}, bool) {
	if len(key) == 0 || key[0] == "" {
		return x, true
	}
	v := reflect.ValueOf(x)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		f := v.FieldByName(key[0])
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		e := v.MapIndex(reflect.ValueOf(key[0]).Convert(v.Type().Key()))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	}
	tracer().Debugf("cannot select key %q of %T", key[0], x)
	return nil, false
}

// matches reports whether x (or its value under key) matches query.
func matches(x interface{}, query interface{}, mode MatchMode, key []string) bool {
	v, ok := field(x, key)
	return ok && mode.Match(v, query)
}
