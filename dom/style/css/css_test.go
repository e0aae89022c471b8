package css_test

import (
	"testing"

	"github.com/npillmayer/jbase/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDimenBasic(t *testing.T) {
	ten, err := css.ParseDimen("10px")
	if err != nil {
		t.Fatal(err)
	}
	switch px, ok := ten.Pixels(); {
	case !ok:
		t.Errorf("expected 10px to be an absolute value, isn't: %#v", ten)
	case px != 10:
		t.Errorf("expected 10px to have 10 pixels, has %g", px)
	}
	auto, _ := css.ParseDimen("auto")
	if !auto.IsAuto() {
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}
	pcnt, _ := css.ParseDimen("80%")
	if !pcnt.IsPercent() || pcnt.String() != "80%" {
		t.Errorf("expected 80%% to be a percentage value, is %v", pcnt)
	}
	inch, _ := css.ParseDimen("1in")
	if px, _ := inch.Pixels(); px != 96 {
		t.Errorf("expected 1in to be 96px, is %g", px)
	}
}

func TestDimenIllegal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	for _, s := range []string{"12em", "px", "abc%"} {
		if _, err := css.ParseDimen(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
	if d, err := css.ParseDimen(""); err != nil || !d.IsNone() {
		t.Errorf("expected empty dimension to be unset, is %#v", d)
	}
}

func TestDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.style")
	defer teardown()
	//
	mode, err := css.ParseDisplay("inline-flex")
	if err != nil {
		t.Fatal(err)
	}
	if mode.Outer() != css.InlineMode || !mode.Contains(css.FlexMode) {
		t.Errorf("expected inline-flex to be inline outside, flex inside; is %s", mode.FullString())
	}
	if !css.IsHidden("none") || !css.IsHidden(" NONE ") {
		t.Errorf("expected display none to be hidden")
	}
	if css.IsHidden("block") || css.IsHidden("no-such-mode") || css.IsHidden("") {
		t.Errorf("expected block, unknown and empty modes to be visible")
	}
	if _, err := css.ParseDisplay("no-such-mode"); err == nil {
		t.Errorf("expected unknown display mode to be reported")
	}
}
