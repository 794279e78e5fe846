package model

import (
	"strings"
	"testing"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		token string
		want  Category
	}{
		{"", CategoryNone},
		{"none", CategoryNone},
		{"sfb", SFB},
		{"SFB", SFB},
		{"  InRoll ", InRoll},
		{"weakred", WeakRed},
		{"hss", HSS},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.token)
		if err != nil {
			t.Fatalf("ParseCategory(%q) failed: %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCategory(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	_, err := ParseCategory("sfx")
	if err == nil {
		t.Fatalf("expected error for unknown token")
	}
	if !strings.Contains(err.Error(), "sfb") || !strings.Contains(err.Error(), "weakred") {
		t.Fatalf("expected available tokens in error: %v", err)
	}
}

func TestCategoryTokensRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Fatalf("round trip of %v failed: %v %v", c, got, err)
		}
	}
}

func TestCategoryGroups(t *testing.T) {
	for _, c := range Categories() {
		if c.IsSkipgram() && c.IsTrigram() {
			t.Fatalf("%v is in two groups", c)
		}
	}
	for _, c := range []Category{SFS, LSS, HSS, FSS} {
		if !c.IsSkipgram() {
			t.Fatalf("expected %v to be a skipgram category", c)
		}
	}
	for _, c := range []Category{InRoll, OutThreeRoll, Alt, WeakRed} {
		if !c.IsTrigram() {
			t.Fatalf("expected %v to be a trigram category", c)
		}
	}
	for _, c := range []Category{CategoryNone, SFB, SFR, FSB} {
		if c.IsSkipgram() || c.IsTrigram() {
			t.Fatalf("expected %v to be neither skipgram nor trigram", c)
		}
	}
}
