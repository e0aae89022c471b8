package dom

import (
	"strings"

	"github.com/npillmayer/jbase/dom/style"
	"github.com/npillmayer/jbase/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// StyleDeclaration gives access to the inline style of an element, i.e. to its
// `style` attribute. It does not cache: every call reads the current
// attribute value, which makes it safe to keep a declaration across
// DOM mutations.
type StyleDeclaration struct {
	node *html.Node
}

// InlineStyle returns the inline style declaration of an element.
func InlineStyle(n *html.Node) *StyleDeclaration {
	return &StyleDeclaration{node: n}
}

// Properties returns the declared properties in declaration order.
// If a property is declared more than once, only its last declaration
// is kept.
func (s *StyleDeclaration) Properties() []style.KeyValue {
	src, ok := GetAttribute(s.node, "style")
	if !ok {
		return nil
	}
	kvs, err := douceuradapter.ParseDeclarations(src)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil
	}
	return dedupDeclarations(kvs)
}

func dedupDeclarations(kvs []style.KeyValue) []style.KeyValue {
	index := make(map[string]int, len(kvs))
	out := kvs[:0]
	for _, kv := range kvs {
		if i, ok := index[kv.Key]; ok {
			out[i] = kv
			continue
		}
		index[kv.Key] = len(out)
		out = append(out, kv)
	}
	return out
}

// Get returns the inline value of a property. Names are accepted in DOM
// (camelCase) or CSS form.
func (s *StyleDeclaration) Get(name string) string {
	p, _ := s.lookup(style.PropertyName(name))
	return p.Value.String()
}

// IsImportant returns true if a property is declared as !important.
func (s *StyleDeclaration) IsImportant(name string) bool {
	p, _ := s.lookup(style.PropertyName(name))
	return p.Important
}

func (s *StyleDeclaration) lookup(key string) (style.KeyValue, bool) {
	for _, kv := range s.Properties() {
		if kv.Key == key {
			return kv, true
		}
	}
	return style.KeyValue{}, false
}

// Set sets the inline value of a property. An empty value removes the
// property. A trailing "!important" marks the property as important.
// Values which would end the declaration (containing ';') are rejected,
// leaving the style unchanged.
func (s *StyleDeclaration) Set(name, value string) {
	if !IsElement(s.node) {
		return
	}
	key := style.PropertyName(name)
	value = strings.TrimSpace(value)
	if value == "" {
		s.Remove(name)
		return
	}
	if strings.ContainsAny(value, ";{}") {
		tracer().P("property", key).Errorf("rejecting style value %q", value)
		return
	}
	kv := style.KeyValue{Key: key, Value: style.Property(value)}
	if v := strings.TrimSuffix(value, "!important"); v != value {
		kv.Value, kv.Important = style.Property(strings.TrimSpace(v)), true
	}
	kvs := s.Properties()
	replaced := false
	for i := range kvs {
		if kvs[i].Key == key {
			kvs[i], replaced = kv, true
		}
	}
	if !replaced {
		kvs = append(kvs, kv)
	}
	s.write(kvs)
}

// Remove removes a property from the inline style.
func (s *StyleDeclaration) Remove(name string) {
	key := style.PropertyName(name)
	kvs := s.Properties()
	kept := kvs[:0]
	for _, kv := range kvs {
		if kv.Key != key {
			kept = append(kept, kv)
		}
	}
	if len(kept) == len(kvs) {
		return
	}
	s.write(kept)
}

// Len returns the number of declared properties.
func (s *StyleDeclaration) Len() int {
	return len(s.Properties())
}

func (s *StyleDeclaration) String() string {
	return serialize(s.Properties())
}

func (s *StyleDeclaration) write(kvs []style.KeyValue) {
	if len(kvs) == 0 {
		RemoveAttribute(s.node, "style")
		return
	}
	SetAttribute(s.node, "style", serialize(kvs))
}

func serialize(kvs []style.KeyValue) string {
	var b strings.Builder
	for i, kv := range kvs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.String())
		b.WriteByte(';')
	}
	return b.String()
}
