package mailer

import (
	"os"
	"strings"
)

// placeholder is the literal token substituted with the recipient's
// first name.
const placeholder = "<FirstName>"

// LoadTemplate reads a plain-text message template.
func LoadTemplate(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Render substitutes every occurrence of the <FirstName> token with
// first. Templates without the token pass through unchanged.
func Render(tmpl, first string) string {
	return strings.ReplaceAll(tmpl, placeholder, first)
}
