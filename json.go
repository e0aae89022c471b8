package jbase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/jbase/dom/domdbg"
)

// previewSize is the maximum number of nodes listed in the JSON preview.
const previewSize = 10

type selectionJSON struct {
	Meta    string   `json:"meta"`
	Query   string   `json:"query"`
	Count   int      `json:"count"`
	Preview []string `json:"preview"`
}

// MarshalJSON creates a short summary of a selection, suitable for logging.
// Nodes are not serialized; up to ten of them are described by tag, id
// and classes.
func (s *Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{
		Meta:    "jBase Wrapper",
		Query:   s.query,
		Count:   len(s.nodes),
		Preview: s.preview(),
	})
}

func (s *Selection) preview() []string {
	preview := make([]string, 0, previewSize)
	for i, n := range s.nodes {
		if i == previewSize {
			break
		}
		preview = append(preview, dom.Describe(n))
	}
	return preview
}

func (s *Selection) String() string {
	d := strings.Join(s.preview(), " ")
	if len(s.nodes) > previewSize {
		d += " …"
	}
	return fmt.Sprintf("jBase(%q)[%d: %s]", s.query, len(s.nodes), d)
}

// Dump returns an indented outline of the subtrees of the selection.
func (s *Selection) Dump() string {
	return domdbg.Outline(s.nodes...)
}
