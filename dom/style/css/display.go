package css

import (
	"fmt"
	"strings"
)

// DisplayMode holds the flags of a CSS "display" value. The low nibble is
// the outer display type, the remaining bits describe the inner type.
type DisplayMode uint16

// Display mode flags
const (
	NoMode          DisplayMode = iota   // unset
	DisplayNone     DisplayMode = 0x0001 // no box
	BlockMode       DisplayMode = 0x0002 // block-level (outer), or block container (inner)
	InlineMode      DisplayMode = 0x0004 // inline-level
	ContentsMode    DisplayMode = 0x0008 // children are displayed, the element itself has no box
	FlowRootMode    DisplayMode = 0x0010
	ListItemMode    DisplayMode = 0x0020
	FlexMode        DisplayMode = 0x0040
	GridMode        DisplayMode = 0x0080
	TableMode       DisplayMode = 0x0100
	InnerBlockMode  DisplayMode = 0x0200 // e.g., inline-block
	InnerInlineMode DisplayMode = 0x0400
)

var modeNames = []struct {
	mode DisplayMode
	name string
}{
	{DisplayNone, "DisplayNone"}, {BlockMode, "BlockMode"}, {InlineMode, "InlineMode"},
	{ContentsMode, "ContentsMode"}, {FlowRootMode, "FlowRootMode"}, {ListItemMode, "ListItemMode"},
	{FlexMode, "FlexMode"}, {GridMode, "GridMode"}, {TableMode, "TableMode"},
	{InnerBlockMode, "InnerBlockMode"}, {InnerInlineMode, "InnerInlineMode"},
}

// keywords maps values of property "display" to mode flags.
var keywords = map[string]DisplayMode{
	"none":         DisplayNone,
	"contents":     ContentsMode,
	"block":        BlockMode | InnerBlockMode,
	"inline":       InlineMode | InnerInlineMode,
	"list-item":    BlockMode | ListItemMode,
	"inline-block": InlineMode | InnerBlockMode,
	"flow-root":    BlockMode | FlowRootMode,
	"flex":         BlockMode | FlexMode,
	"inline-flex":  InlineMode | FlexMode,
	"grid":         BlockMode | GridMode,
	"inline-grid":  InlineMode | GridMode,
	"table":        BlockMode | TableMode,
	"inline-table": InlineMode | TableMode,
}

func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "NoMode"
	}
	return disp.FullString()
}

// FullString lists the names of all flags of a display mode.
func (disp DisplayMode) FullString() string {
	var names []string
	for _, m := range modeNames {
		if disp.Contains(m.mode) {
			names = append(names, m.name)
		}
	}
	return strings.Join(names, " ")
}

// Outer returns the outer display type.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Contains checks if a display mode has the flags of d set.
// It is false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && disp&d == d
}

// IsNone is true for display "none": the element and its descendants are
// not rendered.
func (disp DisplayMode) IsNone() bool {
	return disp.Contains(DisplayNone)
}

// ParseDisplay converts a value of property "display" to mode flags. Values
// are accepted in any case. An empty value results in NoMode. Unknown
// values are reported as an error, together with BlockMode as a fallback.
func ParseDisplay(display string) (DisplayMode, error) {
	display = strings.ToLower(strings.TrimSpace(display))
	if display == "" {
		return NoMode, nil
	}
	if mode, ok := keywords[display]; ok {
		return mode, nil
	}
	if strings.HasPrefix(display, "table-") { // table-row, table-cell, …
		return TableMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}

// IsHidden returns true if a value of property "display" hides an element.
// Unknown values are considered visible.
func IsHidden(display string) bool {
	mode, err := ParseDisplay(display)
	if err != nil {
		tracer().Debugf(err.Error())
		return false
	}
	return mode.IsNone()
}
