package svg

import (
	"strings"
	"testing"
)

func TestElementString(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			"self closing with attrs",
			New("circle", Attr{"cx", "1"}, Attr{"cy", "2"}, Attr{"r", "0.5"}),
			`<circle cx="1" cy="2" r="0.5" />`,
		},
		{
			"nested children in order",
			New("g", Attr{"transform", "translate(1 2)"}).Append(
				New("line", Attr{"x1", "0"}),
				New("rect", Attr{"x", "5"}),
			),
			`<g transform="translate(1 2)"><line x1="0" /><rect x="5" /></g>`,
		},
		{
			"attribute escaping",
			New("text", Attr{"data", `a<b&"c"`}),
			`<text data="a&lt;b&amp;&quot;c&quot;" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSetPreservesOrderAndReplaces(t *testing.T) {
	el := New("rect")
	el.Set("x", "1")
	el.Set("y", "2")
	el.Set("x", "9")

	attrs := el.Attrs()
	if len(attrs) != 2 {
		t.Fatalf("len(attrs) = %d, want 2", len(attrs))
	}
	if attrs[0] != (Attr{"x", "9"}) || attrs[1] != (Attr{"y", "2"}) {
		t.Errorf("attrs = %v, want x=9 then y=2", attrs)
	}
}

func TestGet(t *testing.T) {
	el := New("circle", Attr{"r", "8"})
	if v, ok := el.Get("r"); !ok || v != "8" {
		t.Errorf("Get(r) = %q, %v", v, ok)
	}
	if _, ok := el.Get("cx"); ok {
		t.Error("Get(cx) should report missing attribute")
	}
}

func TestFindAll(t *testing.T) {
	root := New("svg").Append(
		New("g").Append(New("circle"), New("circle")),
		New("circle"),
	)
	if got := len(root.FindAll("circle")); got != 3 {
		t.Errorf("FindAll(circle) = %d elements, want 3", got)
	}
	if root.Find("g") == nil {
		t.Error("Find(g) returned nil")
	}
	if root.Find("polyline") != nil {
		t.Error("Find(polyline) should return nil")
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{0.5, "0.5"},
		{-3.25, "-3.25"},
		{8, "8"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStringNoTemplatePlaceholders(t *testing.T) {
	el := New("image", Attr{"xlink:href", "data:image/png;base64,AAAA"})
	if s := el.String(); strings.Contains(s, "%") {
		t.Errorf("serialized element contains placeholder: %s", s)
	}
}
