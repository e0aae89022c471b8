package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

var myhtml = `
<html><head>
<style>
  p { margin-bottom: 10pt; }
  #world { padding: 20px; }
</style>
</head><body>
  <p>The quick brown fox jumps over the lazy dog.</p>
  <p id="world">Hello <b>World</b>!</p>
  <div><style>div { color: red !important; }</style></div>
</body>
`

func TestExtractStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(myhtml))
	if err != nil {
		t.Fatal(err)
	}
	sheets := ExtractStyleElements(doc)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style sheets, have %d", len(sheets))
	}
	rules := sheets[0].Rules()
	if len(rules) != 2 {
		t.Fatalf("expected first sheet to contain 2 rules, has %d", len(rules))
	}
	if rules[1].Selector() != "#world" {
		t.Errorf("expected selector of 2nd rule to be #world, is %q", rules[1].Selector())
	}
	if v := rules[1].Value("padding"); v != "20px" {
		t.Errorf("expected padding of #world to be 20px, is %q", v)
	}
	if !sheets[1].Rules()[0].IsImportant("color") {
		t.Errorf("expected color of div to be !important")
	}
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	a, _ := Parse("a { color: blue }")
	b, _ := Parse("@media print { a { color: black } } b { font-weight: bold }")
	a.AppendRules(b)
	if len(a.Rules()) != 2 {
		t.Errorf("expected at-rule to be skipped and 2 rules to remain, have %d", len(a.Rules()))
	}
	empty, _ := Parse("")
	if !empty.Empty() {
		t.Errorf("expected empty source to produce an empty stylesheet")
	}
}

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	kvs, err := ParseDeclarations("Color: red; opacity: 0.5 !important")
	if err != nil {
		t.Fatal(err)
	}
	if len(kvs) != 2 {
		t.Fatalf("expected 2 declarations, have %d", len(kvs))
	}
	if kvs[0].Key != "color" || kvs[0].Value != "red" {
		t.Errorf("expected color: red, have %v", kvs[0])
	}
	if kvs[1].Value != "0.5" || !kvs[1].Important {
		t.Errorf("expected opacity 0.5 to be important, have %v", kvs[1])
	}
	kvs, err = ParseDeclarations("display:none")
	if err != nil || len(kvs) != 1 || kvs[0].Value != "none" {
		t.Errorf("expected unterminated declaration display:none, have %v / %v", kvs, err)
	}
	kvs, err = ParseDeclarations(" color: red !important ")
	if err != nil || len(kvs) != 1 || kvs[0].Value != "red" || !kvs[0].Important {
		t.Errorf("expected unterminated important color: red, have %v / %v", kvs, err)
	}
	kvs, err = ParseDeclarations("color:; opacity: 1;")
	if err != nil || len(kvs) != 1 || kvs[0].Key != "opacity" {
		t.Errorf("expected declaration without value to be dropped, have %v / %v", kvs, err)
	}
	if kvs, err := ParseDeclarations("   "); err != nil || len(kvs) != 0 {
		t.Errorf("expected blank declarations to be empty, have %v / %v", kvs, err)
	}
}
