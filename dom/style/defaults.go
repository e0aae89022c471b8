package style

import (
	"golang.org/x/net/html"
)

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
var nonInherited = map[string]string{
	"position":            "static",
	"background-color":    "transparent",
	"border-top-color":    "currentcolor",
	"border-left-color":   "currentcolor",
	"border-right-color":  "currentcolor",
	"border-bottom-color": "currentcolor",
	"float":               "none",
	"opacity":             "1",
	"overflow":            "visible",
	"transform":           "none",
	"transition":          "all 0s ease 0s",
	"will-change":         "auto",
	"z-index":             "auto",
}

var inheritedRoot = map[string]string{
	"color":       "rgb(0, 0, 0)",
	"visibility":  "visible",
	"direction":   "ltr",
	"white-space": "normal",
	"cursor":      "auto",
	"font-weight": "400",
	"line-height": "normal",
}

var isDimension = map[string]string{
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "auto",
	"min-height":                 "auto",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "auto",
	"right":                      "auto",
	"bottom":                     "auto",
	"left":                       "auto",
	"margin-top":                 "0px",
	"margin-left":                "0px",
	"margin-right":               "0px",
	"margin-bottom":              "0px",
	"padding-top":                "0px",
	"padding-left":               "0px",
	"padding-right":              "0px",
	"padding-bottom":             "0px",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0px",
	"border-top-right-radius":    "0px",
	"border-bottom-left-radius":  "0px",
	"border-bottom-right-radius": "0px",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
// Keys are expected in CSS (kebab-case) form. Unknown keys return NullStyle.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForHTMLNode(node)
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	if p, ok := inheritedRoot[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
// Elements carrying the boolean attribute "hidden" are not displayed.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == "hidden" {
			return "none"
		}
	}
	if d, ok := displayDefaults[node.Data]; ok {
		return Property(d)
	}
	return "inline"
}

var displayDefaults = map[string]string{
	"head": "none", "script": "none", "style": "none", "template": "none",
	"title": "none", "meta": "none", "link": "none", "base": "none",
	"noscript": "none", "datalist": "none", "param": "none",

	"html": "block", "body": "block", "address": "block", "article": "block",
	"aside": "block", "blockquote": "block", "details": "block", "dialog": "block",
	"dd": "block", "div": "block", "dl": "block", "dt": "block",
	"fieldset": "block", "figcaption": "block", "figure": "block", "footer": "block",
	"form": "block", "h1": "block", "h2": "block", "h3": "block",
	"h4": "block", "h5": "block", "h6": "block", "header": "block",
	"hgroup": "block", "hr": "block", "main": "block", "menu": "block",
	"nav": "block", "ol": "block", "p": "block", "pre": "block",
	"section": "block", "summary": "block", "ul": "block", "legend": "block",
	"optgroup": "block", "option": "block",

	"li":       "list-item",
	"table":    "table",
	"caption":  "table-caption",
	"thead":    "table-header-group",
	"tbody":    "table-row-group",
	"tfoot":    "table-footer-group",
	"tr":       "table-row",
	"td":       "table-cell",
	"th":       "table-cell",
	"col":      "table-column",
	"colgroup": "table-column-group",

	"button": "inline-block", "input": "inline-block", "select": "inline-block",
	"textarea": "inline-block", "img": "inline", "meter": "inline-block",
	"progress": "inline-block",
}
