package contact

import (
	"slices"
	"testing"
)

func TestDedupeLastWinsFirstSeenPosition(t *testing.T) {
	rows := []Contact{
		{Nome: "X", Email: "a@foo.br"},
		{Nome: "B", Email: "b@foo.br"},
		{Nome: "Y", Email: "a@foo.br"},
	}

	out := Dedupe(rows)

	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	// The duplicate keeps its first-seen position but the last
	// occurrence's values.
	if out[0].Email != "a@foo.br" || out[0].Nome != "Y" {
		t.Errorf("expected {a@foo.br Y} first, got %+v", out[0])
	}
	if out[1].Email != "b@foo.br" || out[1].Nome != "B" {
		t.Errorf("expected {b@foo.br B} second, got %+v", out[1])
	}
}

func TestDedupeDistinctEmailsUntouched(t *testing.T) {
	rows := []Contact{
		{Nome: "A", Email: "a@foo.br"},
		{Nome: "B", Email: "b@foo.br"},
	}

	out := Dedupe(rows)
	if !slices.Equal(out, rows) {
		t.Errorf("expected rows unchanged, got %+v", out)
	}
}

func TestSplitNames(t *testing.T) {
	cases := []struct {
		nome    string
		first   string
		surname string
	}{
		{"Maria Silva Santos", "Maria", "Silva Santos"},
		{"Ana", "Ana", ""},
		{"Jo Silva", "Jo", "Silva"},
	}

	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			out := collect(SplitNames(slices.Values([]Contact{{Nome: tc.nome}})))
			if len(out) != 1 {
				t.Fatalf("expected 1 row, got %d", len(out))
			}
			if out[0].FirstName != tc.first || out[0].Surname != tc.surname {
				t.Errorf("got first=%q surname=%q, want %q/%q",
					out[0].FirstName, out[0].Surname, tc.first, tc.surname)
			}
		})
	}
}

func TestDeriveCountry(t *testing.T) {
	cases := []struct {
		email   string
		country string
	}{
		{"x@foo.uk", "uk"},
		{"x@foo.com", "br"}, // 3-char tld falls back
		{"x@foo", "br"},     // no dot at all
		{"x@foo.UK", "UK"},  // case preserved, not normalized
		{"x@foo.co.jp", "jp"},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			out := collect(DeriveCountry(slices.Values([]Contact{{Email: tc.email}}), "br"))
			if out[0].Country != tc.country {
				t.Errorf("got %q, want %q", out[0].Country, tc.country)
			}
		})
	}
}

func TestFilterCountry(t *testing.T) {
	rows := []Contact{
		{Email: "a@foo.br", Country: "br"},
		{Email: "b@foo.uk", Country: "uk"},
		{Email: "c@foo.br", Country: "br"},
	}

	out := collect(FilterCountry(slices.Values(rows), "br"))

	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].Email != "a@foo.br" || out[1].Email != "c@foo.br" {
		t.Errorf("unexpected rows: %+v", out)
	}
}

func TestTransformsStopEarly(t *testing.T) {
	rows := []Contact{{Nome: "A", Email: "a@foo.br"}, {Nome: "B", Email: "b@foo.br"}}

	var got []Contact
	for row := range SplitNames(slices.Values(rows)) {
		got = append(got, row)
		break
	}

	if len(got) != 1 || got[0].FirstName != "A" {
		t.Errorf("expected a single yielded row, got %+v", got)
	}
}

func collect(rows func(func(Contact) bool)) []Contact {
	var out []Contact
	rows(func(c Contact) bool {
		out = append(out, c)
		return true
	})
	return out
}
