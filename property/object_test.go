package property

import "testing"

func TestConversions(t *testing.T) {
	intCases := []struct {
		in   any
		want int
		ok   bool
	}{
		{720, 720, true},
		{int64(-5), -5, true},
		{float64(12), 12, true},
		{"360", 360, true},
		{" 1.0 ", 1, true},
		{"auto", 0, false},
		{nil, 0, false},
	}
	for _, c := range intCases {
		got, ok := Int(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Int(%#v) = %d, %v; want %d, %v", c.in, got, ok, c.want, c.ok)
		}
	}

	boolCases := []struct {
		in   any
		want bool
		ok   bool
	}{
		{true, true, true},
		{"0", false, true},
		{"on", true, true},
		{"off", false, true},
		{1, true, true},
		{"maybe", false, false},
	}
	for _, c := range boolCases {
		got, ok := Bool(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Bool(%#v) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestObjectGet(t *testing.T) {
	o := Object{"numberingProperties": map[string]any{"numId": "3", "ilvl": 1}}
	if v, ok := o.Int("numberingProperties", "numId"); !ok || v != 3 {
		t.Fatalf("expected numId 3, got %d %v", v, ok)
	}
	if _, ok := o.Get("numberingProperties", "missing"); ok {
		t.Fatal("expected missing path")
	}
	if _, ok := o.Get("numberingProperties", "ilvl", "deeper"); ok {
		t.Fatal("expected primitive to stop the walk")
	}
	var nilObj Object
	if nilObj.Has("x") || nilObj.Obj("x") != nil {
		t.Fatal("nil object must behave as empty")
	}
}
