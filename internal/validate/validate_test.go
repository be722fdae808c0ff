package validate

import "testing"

func TestUsername(t *testing.T) {
	for _, good := range []string{"demo", "a.b-c_d", "  padded  ", "abc"} {
		if _, ok := Username(good); !ok {
			t.Errorf("%q should be valid", good)
		}
	}
	for _, bad := range []string{"", "ab", "has space", "way.too.long.username.padding.extra", "semi;colon"} {
		if _, ok := Username(bad); ok {
			t.Errorf("%q should be invalid", bad)
		}
	}
	if u, _ := Username("  demo  "); u != "demo" {
		t.Errorf("expected trimmed username, got %q", u)
	}
}

func TestEmail(t *testing.T) {
	for _, good := range []string{"a@b.co", "john.doe+tag@apartmart.com"} {
		if _, ok := Email(good); !ok {
			t.Errorf("%q should be valid", good)
		}
	}
	for _, bad := range []string{"", "plain", "a@b", "@b.co", "a@.co"} {
		if _, ok := Email(bad); ok {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestPassword(t *testing.T) {
	if Password("12345") {
		t.Error("five characters should fail")
	}
	if !Password("123456") {
		t.Error("six characters should pass")
	}
}

func TestLimitAndSkip(t *testing.T) {
	for in, want := range map[string]int{"": 50, "x": 50, "-3": 50, "0": 50, "25": 25, "500": 200} {
		if got := Limit(in); got != want {
			t.Errorf("Limit(%q) = %d, want %d", in, got, want)
		}
	}
	for in, want := range map[string]int{"": 0, "x": 0, "-1": 0, "5": 5} {
		if got := Skip(in); got != want {
			t.Errorf("Skip(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := ID("prod-1"); !ok {
		t.Error("prod-1 should be valid")
	}
	for _, bad := range []string{"", "has space", "a/b", "a;b"} {
		if _, ok := ID(bad); ok {
			t.Errorf("%q should be invalid", bad)
		}
	}
}
