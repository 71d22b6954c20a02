package resolve

import (
	"net/url"
	"reflect"
	"testing"
)

func TestScanner_AttributeValues(t *testing.T) {
	sc := newScanner("glb")
	body := `<a href="https://cdn.example.com/abs.glb">abs</a>
<script>tpl = '<model-viewer src="in-script.glb">';</script>
<a href="files/page.glb?v=1">page</a>
<a href=bare.glb>bare</a>
<img src="files/page.glb?v=1">
<a href="notes.txt">other</a>`

	got := sc.attributeValues(body)
	expected := []string{"in-script.glb", "files/page.glb?v=1", "bare.glb"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("attributeValues() = %v, expected %v", got, expected)
	}
}

func TestScanner_FindAttributeTier(t *testing.T) {
	sc := newScanner("glb")
	base, _ := url.Parse("https://example.com/p/page")

	found, tier, ok := sc.find(`<script>el.innerHTML = '<model-viewer src="robot.glb">';</script>`, base, nil)
	if !ok {
		t.Fatal("find() found nothing")
	}
	if found != "https://example.com/p/robot.glb" || tier != TierAttribute {
		t.Errorf("find() = %s (%s), expected https://example.com/p/robot.glb (%s)", found, tier, TierAttribute)
	}
}
