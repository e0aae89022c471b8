package cssom_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/jbase/dom/style/cssom"
	"github.com/npillmayer/jbase/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

var sheetSource = `
p { color: black; padding: 1px 2px; }
.note { color: green; }
p.note { color: blue; }
#x { color: red; }
p { color: gray !important; margin: 0 4px; }
div p { color: purple; }
`

func setup(t *testing.T, markup string) (*html.Node, []cssom.StyleSheet) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	sheet, err := douceuradapter.Parse(sheetSource)
	if err != nil {
		t.Fatal(err)
	}
	return doc, []cssom.StyleSheet{sheet}
}

func find(t *testing.T, doc *html.Node, sel string) *html.Node {
	n := cascadia.Query(doc, cascadia.MustCompile(sel))
	if n == nil {
		t.Fatalf("no element for %q", sel)
	}
	return n
}

func TestCascadeImportance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	doc, sheets := setup(t, `<p id="x" class="note">hello</p>`)
	v, ok := cssom.Lookup(sheets, find(t, doc, "p"), "color")
	if !ok || v != "gray" {
		t.Errorf("expected !important color gray to win, have %q", v)
	}
}

func TestCascadeShortcuts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	doc, sheets := setup(t, `<p>hello</p>`)
	p := find(t, doc, "p")
	if v, _ := cssom.Lookup(sheets, p, "padding-left"); v != "2px" {
		t.Errorf("expected padding-left from shortcut to be 2px, is %q", v)
	}
	if v, _ := cssom.Lookup(sheets, p, "margin-right"); v != "4px" {
		t.Errorf("expected margin-right from shortcut to be 4px, is %q", v)
	}
	if _, ok := cssom.Lookup(sheets, p, "border-top-width"); ok {
		t.Errorf("expected border-top-width not to be declared")
	}
}

func TestCascadeSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	other, err := douceuradapter.Parse(`.a { width: 1px } div.a { width: 2px } .a { width: 3px }`)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := html.Parse(strings.NewReader(`<div class="a"></div><span class="a"></span>`))
	if err != nil {
		t.Fatal(err)
	}
	sheets := []cssom.StyleSheet{other}
	if v, _ := cssom.Lookup(sheets, find(t, doc, "div"), "width"); v != "2px" {
		t.Errorf("expected more specific rule to win for div, have %q", v)
	}
	if v, _ := cssom.Lookup(sheets, find(t, doc, "span"), "width"); v != "3px" {
		t.Errorf("expected later rule to win for span, have %q", v)
	}
}

func TestCascadeIllegalSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`p:::x { color: red }`)
	if err != nil {
		t.Skip("stylesheet rejected by parser")
	}
	doc, _ := html.Parse(strings.NewReader(`<p></p>`))
	if _, ok := cssom.Lookup([]cssom.StyleSheet{sheet}, find(t, doc, "p"), "color"); ok {
		t.Errorf("expected rule with illegal selector to be ignored")
	}
}
