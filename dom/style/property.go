package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'jbase.style'
func tracer() tracing.Trace {
	return tracing.Select("jbase.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key       string
	Value     Property
	Important bool
}

func (kv KeyValue) String() string {
	if kv.Important {
		return kv.Key + ": " + kv.Value.String() + " !important"
	}
	return kv.Key + ": " + kv.Value.String()
}

// --- Property names ---------------------------------------------------

// PropertyName converts a DOM style-property name to its CSS form, e.g.
//
//    PropertyName("backgroundColor") => "background-color"
//    PropertyName("webkitTransform") => "-webkit-transform"
//    PropertyName("cssFloat")        => "float"
//
// Names already in kebab-case and custom properties ("--x") are returned
// unchanged.
func PropertyName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	if name == "cssFloat" {
		return "float"
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		if i == 0 {
			for _, vendor := range vendorPrefixes {
				if strings.HasPrefix(name, vendor) && len(name) > len(vendor) &&
					name[len(vendor)] >= 'A' && name[len(vendor)] <= 'Z' {
					b.WriteByte('-')
				}
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

var vendorPrefixes = []string{"webkit", "moz", "ms", "o"}

// CamelName converts a CSS property name to its DOM style-property form, e.g.
//
//    CamelName("background-color") => "backgroundColor"
//
func CamelName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	if name == "float" {
		return "cssFloat"
	}
	name = strings.TrimPrefix(name, "-")
	var b strings.Builder
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsUnitless returns true for properties which take plain numbers, i.e.
// numeric values must not be suffixed with "px".
func IsUnitless(key string) bool {
	_, ok := unitless[PropertyName(key)]
	return ok
}

var unitless = map[string]struct{}{
	"opacity":           {},
	"z-index":           {},
	"font-weight":       {},
	"line-height":       {},
	"flex":              {},
	"flex-grow":         {},
	"flex-shrink":       {},
	"order":             {},
	"zoom":              {},
	"column-count":      {},
	"fill-opacity":      {},
	"stroke-opacity":    {},
	"orphans":           {},
	"widows":            {},
	"grid-row":          {},
	"grid-column":       {},

	"animation-iteration-count": {},
}

// FormatValue creates a property value from a Go value. Strings are taken
// literally, numbers are formatted and get a "px" unit, if the property
// is not unitless. Other types are formatted with fmt.
func FormatValue(key string, value interface{}) Property {
	var num string
	switch v := value.(type) {
	case nil:
		return NullStyle
	case string:
		return Property(v)
	case Property:
		return v
	case int:
		num = strconv.Itoa(v)
	case int64:
		num = strconv.FormatInt(v, 10)
	case int32:
		num = strconv.FormatInt(int64(v), 10)
	case float64:
		num = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		num = strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		tracer().Debugf("style value of type %T formatted with fmt", value)
		return Property(fmt.Sprint(value))
	}
	if IsUnitless(key) {
		return Property(num)
	}
	return Property(num + "px")
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "visibility", "quotes":
		return true
	case "letter-spacing", "line-height", "text-align", "text-indent", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "text-transform":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
//
// Keys which are not shortcut properties are returned as a single pair.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return []KeyValue{{Key: key, Value: value}}, nil
}

// IsCompound returns true if key is a shortcut property which
// SplitCompoundProperty is able to split.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s, have %d", pre, suf, l)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0]), false}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1]), false}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2]), false}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3]), false}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1]), false}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0]), false}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1]), false}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0]), false}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0]), false}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0]), false}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
