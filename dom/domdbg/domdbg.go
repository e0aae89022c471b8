/*
Package domdbg implements helpers to debug a DOM tree.

Outline prints a DOM tree as indented text, which is what jBase wrappers
use for their Dump output. ToGraphViz writes a diagram of a tree, optionally
decorated with computed styles.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/jbase/dom/style"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// --- Outline ----------------------------------------------------------

// Outline returns an indented text representation of the subtrees of a
// list of nodes. Whitespace-only text nodes are left out.
func Outline(nodes ...*html.Node) string {
	p := tp.New()
	for _, n := range nodes {
		outline(p, n)
	}
	return p.String()
}

func outline(p tp.Tree, n *html.Node) {
	if n == nil {
		return
	}
	l := label(n)
	if l == "" {
		return
	}
	if n.FirstChild == nil {
		p.AddNode(l)
		return
	}
	branch := p.AddBranch(l)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		outline(branch, ch)
	}
}

func label(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		t := strings.TrimSpace(n.Data)
		if t == "" {
			return ""
		}
		return fmt.Sprintf("%q", shorten(t, 24))
	case html.CommentNode:
		return "<!-- " + shorten(strings.TrimSpace(n.Data), 24) + " -->"
	case html.DoctypeNode:
		return "<!DOCTYPE " + n.Data + ">"
	}
	return dom.Describe(n)
}

func shorten(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit]) + "…"
	}
	return s
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	Props     []string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
	StyleEdge *template.Template
}

var defaultProps = []string{"display", "color", "visibility", "opacity"}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the document, the root
// node of the tree, a Writer, and an optional list of style properties.
// Every element node is accompanied by a table of the computed values
// of these properties.
//
// If the client does not provide a list of properties, the following
// default will be used:
//
//     - display
//     - color
//     - visibility
//     - opacity
//
func ToGraphViz(doc *dom.Document, root *html.Node, w io.Writer, props []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Props: props}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	gparams.StyleEdge = template.Must(template.New("styleedge").Parse(styleEdgeTmpl))
	if props == nil {
		gparams.Props = defaultProps
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{doc: doc, w: w, dict: make(map[*html.Node]string, 256), params: &gparams}
	if err = g.nodes(root); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a document and a testing.T, it will
// create a Graphviz image of the DOM tree and write it to a file in the
// current folder, choosing a unique file name. It returns the name of the
// image file, which is in SVG format. Dotty requires the `dot` command.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *dom.Document, t *testing.T) string {
	tmpfile, err := ioutil.TempFile(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return ""
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(doc, doc.Root(), tmpfile, nil); err != nil {
		t.Error(err)
		return ""
	}
	svg := tmpfile.Name() + ".svg"
	cmd := exec.Command("dot", "-Tsvg", "-o"+svg, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
		return ""
	}
	return svg
}

type graph struct {
	doc    *dom.Document
	w      io.Writer
	dict   map[*html.Node]string
	params *graphParamsType
}

type node struct {
	N    *html.Node
	Name string
	Text bool
}

type styles struct {
	Name       string
	Properties []style.KeyValue
}

func (g *graph) name(n *html.Node) string {
	name := g.dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n] = name
	}
	return name
}

func (g *graph) nodes(n *html.Node) error {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
		return nil
	}
	if err := g.domNode(n); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := g.nodes(ch); err != nil {
			return err
		}
		if _, ok := g.dict[ch]; !ok {
			continue
		}
		e := []string{g.name(n), g.name(ch)}
		if err := g.params.EdgeTmpl.Execute(g.w, e); err != nil {
			return err
		}
	}
	return nil
}

func (g *graph) domNode(n *html.Node) error {
	name := g.name(n)
	label := dom.Describe(n)
	if err := g.params.NodeTmpl.Execute(g.w, node{n, name, n.Type == html.TextNode}); err != nil {
		return err
	}
	if !dom.IsElement(n) || g.doc == nil {
		return nil
	}
	cs := g.doc.ComputedStyle(n)
	st := styles{Name: label}
	for _, p := range g.params.Props {
		st.Properties = append(st.Properties, style.KeyValue{Key: p, Value: style.Property(cs.Get(p))})
	}
	if err := g.params.StyleTmpl.Execute(g.w, struct {
		Node   string
		Styles styles
	}{name, st}); err != nil {
		return err
	}
	return g.params.StyleEdge.Execute(g.w, name)
}

func shortText(n *html.Node) string {
	s := "\"\\\"" + shorten(strings.TrimSpace(n.Data), 10) + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .Text }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Data }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const stylesTmpl = `{{ .Node }}_css [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Styles.Name }}</font></td></tr>
      {{ range .Styles.Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [weight=1] ;
`

const styleEdgeTmpl = `{{ . }} -> {{ . }}_css [dir=none weight=1 style="dashed"] ;
`
