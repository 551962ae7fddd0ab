package contact

import (
	"iter"
	"strings"
)

// Contact is one row of the mailing list. Field order fixes the CSV
// column order: Nome, FirstName, Surname, Email, Country.
type Contact struct {
	Nome      string `csv:"Nome"`
	FirstName string `csv:"FirstName"`
	Surname   string `csv:"Surname"`
	Email     string `csv:"Email"`
	Country   string `csv:"Country"`
}

// Dedupe keeps exactly one row per distinct email. A repeated email
// overwrites the earlier row in place, so the surviving row holds the
// last occurrence's values at the position where the email was first
// seen.
func Dedupe(rows []Contact) []Contact {
	index := make(map[string]int, len(rows))
	out := make([]Contact, 0, len(rows))
	for _, row := range rows {
		if i, seen := index[row.Email]; seen {
			out[i] = row
			continue
		}
		index[row.Email] = len(out)
		out = append(out, row)
	}
	return out
}

// SplitNames splits each Nome on the first space into FirstName and
// Surname. A single-word Nome leaves Surname empty.
func SplitNames(rows iter.Seq[Contact]) iter.Seq[Contact] {
	return func(yield func(Contact) bool) {
		for row := range rows {
			first, rest, _ := strings.Cut(row.Nome, " ")
			row.FirstName = first
			row.Surname = rest
			if !yield(row) {
				return
			}
		}
	}
}

// DeriveCountry fills Country from the segment after the last dot of
// the email address: exactly two characters is taken as a country code
// verbatim, anything else falls back to fallback. Addresses are not
// validated; an address without a dot makes the whole address the
// candidate.
func DeriveCountry(rows iter.Seq[Contact], fallback string) iter.Seq[Contact] {
	return func(yield func(Contact) bool) {
		for row := range rows {
			tld := row.Email[strings.LastIndex(row.Email, ".")+1:]
			if len(tld) == 2 {
				row.Country = tld
			} else {
				row.Country = fallback
			}
			if !yield(row) {
				return
			}
		}
	}
}

// FilterCountry yields only the rows whose Country equals code.
func FilterCountry(rows iter.Seq[Contact], code string) iter.Seq[Contact] {
	return func(yield func(Contact) bool) {
		for row := range rows {
			if row.Country != code {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}
