package jbase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var page = `<!DOCTYPE html>
<html><head>
<style>
  .hidden { display: none; }
  .panel { height: 80px; }
</style>
</head><body>
<ul id="list">
  <li class="a" id="i1">one</li>
  <li class="a b" id="i2">two</li>
  <li class="c" id="i3">three</li>
  <li class="a" id="i4"><span class="x">four</span></li>
</ul>
<div id="box" class="panel hidden"><p>inside</p></div>
<div id="tabs">
  <section id="s1"><div class="card"><p id="deep">deep</p></div></section>
  <section id="s2" class="stop"><p>two</p></section>
  <section id="s3"><p>three</p></section>
</div>
<form id="f">
  <input type="checkbox" id="cb">
  <input type="text" id="name" value="Ada">
  <select id="sel"><option value="1">One</option><option value="2" selected>Two</option></select>
  <button id="go" disabled>Go</button>
</form>
</body></html>`

// setup creates an environment with a mock clock.
func setup(t *testing.T) (*Env, *clock.Mock) {
	mock := clock.NewMock()
	env, err := ParseHTML(page, dom.WithClock(mock))
	require.NoError(t, err)
	t.Cleanup(env.Close)
	return env, mock
}

func ids(s *Selection) []string {
	var r []string
	s.Each(func(_ int, n *html.Node) {
		id, _ := dom.GetAttribute(n, "id")
		r = append(r, id)
	})
	return r
}

func TestNewInputs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase")
	defer teardown()
	//
	env, _ := setup(t)
	s := env.Select("li.a")
	assert.Equal(t, []string{"i1", "i2", "i4"}, ids(s))
	assert.Equal(t, "li.a", s.Query())
	assert.Equal(t, env.Document, s.Document())
	//
	frag := env.Select(`  <em id="e1">x</em> text <em id="e2">y</em>`)
	assert.Equal(t, []string{"e1", "e2"}, ids(frag), "fragments keep elements only")
	assert.Nil(t, frag.Get(0).Parent, "fragment nodes are detached")
	//
	n := env.Document.QuerySelector("#i3")
	assert.Equal(t, 1, env.Select(n).Len())
	assert.Equal(t, []string{"i3"}, ids(env.Select([]*html.Node{n, n, nil})))
	c := env.Select(s)
	assert.Equal(t, ids(s), ids(c))
	assert.Equal(t, "li.a", c.Query())
	assert.Equal(t, html.DocumentNode, New(env.Document).Get(0).Type)
	assert.Equal(t, html.DocumentNode, New(env.Window).Get(0).Type)
	//
	assert.Equal(t, 0, env.Select(nil).Len())
	assert.Equal(t, 0, env.Select(42).Len())
	assert.Equal(t, 0, env.Select("li[").Len(), "invalid selector")
	assert.Equal(t, 0, New("li").Len(), "no context, no default window")
}

func TestEmptySelectionIsSafe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase")
	defer teardown()
	//
	s := New(nil)
	assert.NotPanics(t, func() {
		s.Parent().Children().Closest("div").Next().Prev().Siblings().
			AddClass("x").RemoveClass("x").ToggleClass("y").SetCss("color", "red").
			SetAttr("a", "b").SetText("t").SetHTML("<b>").Append("<i>").Remove().
			FadeIn().SlideDown().SlideToggle().Trigger("click").Click().Focus()
	})
	assert.False(t, s.HasClass("x"))
	assert.Equal(t, "", s.Css("color"))
	_, ok := s.Attr("a")
	assert.False(t, ok)
	assert.Equal(t, "", s.Val())
	assert.False(t, s.Checked())
	assert.Nil(t, s.Get(0))
}

func TestEqIndexing(t *testing.T) {
	env, _ := setup(t)
	s := env.Select("li")
	require.Equal(t, 4, s.Len())
	assert.Equal(t, s.Eq(3).Get(0), s.Eq(-1).Get(0))
	assert.Equal(t, s.Eq(0).Get(0), s.Eq(-4).Get(0))
	assert.Equal(t, 0, s.Eq(4).Len())
	assert.Equal(t, 0, s.Eq(-5).Len())
	assert.Equal(t, ids(s.Last()), ids(s.Eq(-1)))
	assert.Equal(t, []string{"i1"}, ids(s.First()))
}

func TestDistinct(t *testing.T) {
	env, _ := setup(t)
	s := env.Select(".a").Add(".a.b").Add(env.Select("#i3"))
	assert.Equal(t, []string{"i1", "i2", "i4", "i3"}, ids(s))
	assert.Equal(t, 3, env.Select(".a, .b, li.a").Len())
	nodes := s.Nodes()
	nodes[0] = nil
	assert.NotNil(t, s.Get(0), "Nodes returns a copy")
}

func TestJSON(t *testing.T) {
	env, _ := setup(t)
	b, err := json.Marshal(env.Select("li.a"))
	require.NoError(t, err)
	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &summary))
	assert.Equal(t, "jBase Wrapper", summary["meta"])
	assert.Equal(t, "li.a", summary["query"])
	assert.EqualValues(t, 3, summary["count"])
	assert.Equal(t, []interface{}{"li#i1.a", "li#i2.a.b", "li#i4.a"}, summary["preview"])
	//
	many := env.Select(strings.Repeat("<i></i>", 12))
	assert.Len(t, many.preview(), previewSize)
	assert.True(t, strings.HasSuffix(many.String(), "…]"), many.String())
	assert.Contains(t, env.Select("#i4").Dump(), "span.x")
}
