package css

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenPercent  uint32 = 0x0005
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions. Absolute dimensions are
// held in CSS pixels.
type DimenT struct {
	px    float64
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| Px float64
	| Percentage float64
*/

// Auto creates a dimension with value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a dimension with value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension with value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// Px creates a CSS dimension with a fixed value of x pixels.
func Px(x float64) DimenT {
	return DimenT{px: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{px: n, flags: dimenPercent}
}

// IsNone is true for the zero value, i.e. an unset dimension.
func (d DimenT) IsNone() bool { return d.flags&kindMask == dimenNone }

// IsAuto is true for "auto".
func (d DimenT) IsAuto() bool { return d.flags&kindMask == dimenAuto }

// IsAbsolute is true for pixel dimensions.
func (d DimenT) IsAbsolute() bool { return d.flags&kindMask == dimenAbsolute }

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool { return d.flags&kindMask == dimenPercent }

// Pixels returns the pixel value of an absolute dimension, together with
// a flag indicating if d is absolute.
func (d DimenT) Pixels() (float64, bool) {
	if !d.IsAbsolute() {
		return 0, false
	}
	return d.px, true
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return strconv.FormatFloat(d.px, 'f', -1, 64) + "px"
	case dimenPercent:
		return strconv.FormatFloat(d.px, 'f', -1, 64) + "%"
	}
	return ""
}

// ParseDimen parses a CSS dimension. Supported are the keywords auto, inherit
// and initial, percentages, plain zero, and the absolute units px, pt, pc, in,
// cm and mm (converted to px with 96 px per inch).
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return DimenT{}, nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return Px(0), nil
	}
	if strings.HasSuffix(s, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return DimenT{}, errors.Wrapf(err, "illegal percentage %q", s)
		}
		return Percentage(n), nil
	}
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, u.suffix), 64)
			if err != nil {
				return DimenT{}, errors.Wrapf(err, "illegal dimension %q", s)
			}
			return Px(n * u.px), nil
		}
	}
	return DimenT{}, errors.Errorf("unsupported dimension %q", s)
}

var units = []struct {
	suffix string
	px     float64
}{
	{"px", 1},
	{"pt", 96.0 / 72.0},
	{"pc", 16},
	{"in", 96},
	{"cm", 96.0 / 2.54},
	{"mm", 96.0 / 25.4},
}
