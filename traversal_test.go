package jbase

import (
	"testing"

	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestTreeTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase")
	defer teardown()
	//
	env, _ := setup(t)
	deep := env.Select("#deep")
	assert.Equal(t, []string{"s1"}, ids(deep.Closest("section")))
	assert.Equal(t, []string{"deep"}, ids(deep.Closest("p")), "element itself is a candidate")
	assert.Equal(t, 0, deep.Closest("ul").Len())
	assert.Equal(t, 5, deep.Parents().Len())
	assert.Equal(t, []string{"s1"}, ids(deep.Parents("section")))
	assert.Equal(t, 2, deep.ParentsUntil("#tabs").Len())
	assert.Equal(t, []string{"s1"}, ids(deep.ParentsUntil("body", "section")))
	//
	li := env.Select("li")
	assert.Equal(t, []string{"list"}, ids(li.Parent()), "parents are distinct")
	assert.Equal(t, 4, env.Select("#list").Children().Len())
	assert.Equal(t, []string{"i3"}, ids(env.Select("#list").Children(".c")))
	assert.Equal(t, 1, env.Select("#list").Find("span").Len())
	assert.Equal(t, 5, env.Select("#list").Descendants().Len())
	assert.Equal(t, 4, New(env.Document).FindAll("li").Len())
	//
	tabs := env.Select("#tabs")
	assert.Equal(t, []string{"s1", "", "deep", "s3", ""}, ids(tabs.DescendantsUntil(".stop")))
	assert.Equal(t, []string{"deep"}, ids(tabs.DescendantsUntil(".stop", "p#deep")))
}

func TestSiblingTraversal(t *testing.T) {
	env, _ := setup(t)
	i2 := env.Select("#i2")
	assert.Equal(t, []string{"i3"}, ids(i2.Next()))
	assert.Equal(t, 0, i2.Next(".a").Len())
	assert.Equal(t, []string{"i1"}, ids(i2.Prev()))
	assert.Equal(t, ids(i2.Next()), ids(i2.NextSibling()))
	assert.Equal(t, ids(i2.Prev()), ids(i2.PrevSibling()))
	assert.Equal(t, ids(i2.Next()), ids(i2.Sibling()))
	assert.Equal(t, []string{"i3", "i4"}, ids(i2.NextAll()))
	assert.Equal(t, []string{"i4"}, ids(i2.NextAll(".a")))
	assert.Equal(t, []string{"i3", "i2", "i1"}, ids(env.Select("#i4").PrevAll()), "nearest first")
	assert.Equal(t, []string{"i2", "i3"}, ids(env.Select("#i1").NextUntil("#i4")))
	assert.Equal(t, []string{"i3"}, ids(env.Select("#i4").PrevUntil("#i2")))
	assert.Equal(t, []string{"i1", "i3", "i4"}, ids(i2.Siblings()))
	assert.Equal(t, []string{"i1", "i4"}, ids(i2.Siblings(".a")))
	assert.Equal(t, 0, env.Select("#i4").Next().Len())
}

func TestFiltering(t *testing.T) {
	env, _ := setup(t)
	li := env.Select("li")
	assert.Equal(t, []string{"i1", "i2", "i4"}, ids(li.FilterBy(".a")))
	assert.Equal(t, []string{"i3"}, ids(li.Not(".a")))
	odd := li.FilterByFunc(func(i int, _ *html.Node) bool { return i%2 == 1 })
	assert.Equal(t, []string{"i2", "i4"}, ids(odd))
	withSpan := li.NotFunc(func(_ int, n *html.Node) bool {
		return dom.QuerySelector(n, "span") == nil
	})
	assert.Equal(t, []string{"i4"}, ids(withSpan))
	assert.Equal(t, 4, li.Len(), "filters do not change the receiver")
}
