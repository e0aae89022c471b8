/*
Package cssom resolves style properties of DOM elements from the rules
of a document's <style> elements.

The cascade considers importance, selector specificity (as computed by
github.com/andybalholm/cascadia) and source order. Inline styles are
handled by package dom, which asks Cascade for the winning rule value and
compares it with the inline declaration. Shorthand properties such as
"padding" or "margin" are expanded into their longhands when a longhand
is requested.

Media queries, cascade layers and inheritance are not modelled: a property
without a matching rule falls back to the user-agent default from package
style.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'jbase.style'.
func tracer() tracing.Trace {
	return tracing.Select("jbase.style")
}
