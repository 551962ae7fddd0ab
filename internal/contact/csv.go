package contact

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// Read parses a contact CSV file. The header drives column matching, so
// extra columns are ignored and column order does not matter.
func Read(path string) ([]Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadFrom parses contact rows from r. Every row must carry Nome and
// Email; the remaining columns may be absent.
func ReadFrom(r io.Reader) ([]Contact, error) {
	var rows []Contact
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if row.Nome == "" || row.Email == "" {
			return nil, fmt.Errorf("row %d: missing Nome or Email", i+1)
		}
	}
	return rows, nil
}

// Write emits the curated rows to dst. The destination "-" or "stdout"
// (any case) writes to standard output, which is left open; any other
// value is created as a file.
func Write(dst string, rows []Contact) error {
	if isStdout(dst) {
		return WriteTo(os.Stdout, rows)
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := WriteTo(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo emits the header row Nome,FirstName,Surname,Email,Country
// followed by each row's values in that order.
func WriteTo(w io.Writer, rows []Contact) error {
	return gocsv.Marshal(&rows, w)
}

func isStdout(dst string) bool {
	switch strings.ToLower(dst) {
	case "-", "stdout":
		return true
	}
	return false
}
