package html_test

import (
	"strings"
	"testing"

	"github.com/go-widgets/dropdown/pkg/html"
)

func TestString_Structure(t *testing.T) {
	n := html.Node[string]{
		Tag:   "div",
		Attrs: []html.Attr{html.Class("container")},
		Children: []html.Node[string]{
			{Tag: "button", Children: []html.Node[string]{html.Text[string]("Select ...")}},
			{Tag: "ul", Attrs: []html.Attr{html.Class("closed")}},
		},
	}
	want := `<div class="container"><button>Select ...</button><ul class="closed"></ul></div>`
	if got := n.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestString_EscapesTextAndAttrs(t *testing.T) {
	n := html.Node[string]{
		Tag:      "li",
		Attrs:    []html.Attr{{Key: "class", Value: `a"b`}},
		Children: []html.Node[string]{html.Text[string]("<script>")},
	}
	got := n.String()
	if strings.Contains(got, "<script>") {
		t.Errorf("text content not escaped: %q", got)
	}
	if strings.Contains(got, `class="a"b"`) {
		t.Errorf("attribute value not escaped: %q", got)
	}
}

func TestString_VoidElement(t *testing.T) {
	n := html.El("div", html.Node[string]{Tag: "br"})
	if got := n.String(); got != "<div><br></div>" {
		t.Errorf("String() = %q", got)
	}
}

func TestRender_WritesSameAsString(t *testing.T) {
	n := html.El("span", html.Text[string]("x"))
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if sb.String() != n.String() {
		t.Errorf("Render wrote %q, String is %q", sb.String(), n.String())
	}
}

func TestString_HandlersNotSerialized(t *testing.T) {
	n := html.Node[string]{
		Tag:      "button",
		Handlers: []html.Handler[string]{html.On("click", "msg")},
	}
	if got := n.String(); got != "<button></button>" {
		t.Errorf("String() = %q", got)
	}
}
