package port

import "testing"

func TestInvertInvolutive(t *testing.T) {
	for d := First; d <= Last; d++ {
		if got := Invert(Invert(d)); got != d {
			t.Errorf("Invert(Invert(%v)) = %v, want %v", d, got, d)
		}
	}
}

func TestInvertPairs(t *testing.T) {
	cases := []struct{ a, b Port }{
		{Left, Right},
		{Up, Down},
		{D5, D6},
	}
	for _, c := range cases {
		if Invert(c.a) != c.b {
			t.Errorf("Invert(%v) = %v, want %v", c.a, Invert(c.a), c.b)
		}
		if Invert(c.b) != c.a {
			t.Errorf("Invert(%v) = %v, want %v", c.b, Invert(c.b), c.a)
		}
	}
}

func TestIsDirectional(t *testing.T) {
	for d := First; d <= Last; d++ {
		if !IsDirectional(d) {
			t.Errorf("IsDirectional(%v) = false, want true", d)
		}
	}
	for _, p := range []Port{NIL, ACC, ANY, LAST, IMMEDIATE} {
		if IsDirectional(p) {
			t.Errorf("IsDirectional(%v) = true, want false", p)
		}
	}
}

func TestParseExactNames(t *testing.T) {
	cases := map[string]Port{
		"LEFT": Left, "RIGHT": Right, "UP": Up, "DOWN": Down,
		"NIL": NIL, "ACC": ACC, "ANY": ANY, "LAST": LAST,
	}
	for name, want := range cases {
		got, ok := Parse(name)
		if !ok || got != want {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, true)", name, got, ok, want)
		}
	}
	if _, ok := Parse("NOPE"); ok {
		t.Errorf("Parse(\"NOPE\") should fail")
	}
}

func TestParseOperandExactMatchAlwaysSucceeds(t *testing.T) {
	for _, name := range []string{"LEFT", "RIGHT", "UP", "DOWN", "NIL", "ACC", "ANY", "LAST"} {
		if _, ok := ParseOperand(name, false); !ok {
			t.Errorf("ParseOperand(%q, false) should succeed", name)
		}
	}
}

func TestParseOperandPrefixRequiresPermissive(t *testing.T) {
	if _, ok := ParseOperand("L", false); ok {
		t.Errorf("ParseOperand(\"L\", false) should fail outside permissive mode")
	}
	got, ok := ParseOperand("L", true)
	if !ok || got != Left {
		t.Errorf("ParseOperand(\"L\", true) = (%v, %v), want (LEFT, true)", got, ok)
	}
	got, ok = ParseOperand("AN", true)
	if !ok || got != ANY {
		t.Errorf("ParseOperand(\"AN\", true) = (%v, %v), want (ANY, true)", got, ok)
	}
}

func TestParseOperandUnknownFails(t *testing.T) {
	if _, ok := ParseOperand("ZZZ", true); ok {
		t.Errorf("ParseOperand(\"ZZZ\", true) should fail")
	}
}
