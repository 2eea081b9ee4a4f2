// Package syncid generates and validates the opaque tokens that identify a
// shared backup slot. Ids are user-visible and often read aloud or typed on
// another device, so the generated alphabet skips easily-confused characters.
package syncid

import (
	"fmt"
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Valid ids are uppercase alphanumeric plus hyphen, minimum 4 characters.
var pattern = regexp.MustCompile(`^[A-Z0-9-]{4,}$`)

// alphabet drops 0/O, 1/I/L to keep ids unambiguous when shared by voice.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Generate creates a new sync id of the form XXXX-XXXX.
func Generate() (string, error) {
	id, err := gonanoid.Generate(alphabet, 8)
	if err != nil {
		return "", fmt.Errorf("generate sync id: %w", err)
	}
	return id[:4] + "-" + id[4:], nil
}

// Valid reports whether s is an acceptable sync id. User-chosen ids are
// allowed as long as they match the format.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
