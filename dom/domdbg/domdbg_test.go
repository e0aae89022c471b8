package domdbg

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var page = `<html><body>
<div id="a" class="x y">Hello <b>World</b></div>
<!-- a comment -->
<p style="color: red">A rather long paragraph text which gets cut</p>
</body></html>`

func TestOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	out := Outline(doc.Body())
	t.Logf("\n%s", out)
	for _, part := range []string{"body", "div#a.x.y", `"Hello"`, "b", `"World"`, "<!-- a comment -->", "p", "…"} {
		assert.Contains(t, out, part)
	}
	assert.NotContains(t, out, `""`, "whitespace text must be left out")
	lines := strings.Split(strings.TrimSpace(Outline(doc.QuerySelectorAll("b")...)), "\n")
	assert.Len(t, lines, 3, "root, b and its text")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(doc, doc.Body(), &buf, []string{"color"}))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "<td>red</td>")
	assert.NotContains(t, dot, "display:", "only requested properties are listed")
}

func TestDotty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Graphviz rendering in short mode")
	}
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("Graphviz dot not installed")
	}
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	svg := Dotty(doc, t)
	require.NotEmpty(t, svg)
	defer os.Remove(svg)
	info, err := os.Stat(svg)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
