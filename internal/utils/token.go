package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// slugBytes gives 11 URL-safe characters once base64 encoded, enough
// entropy that collisions are practically impossible; uniqueness is
// still re-checked against the database before assignment.
const slugBytes = 8

// PublicSlug returns a random URL-safe token used as a booking page's
// public identifier.
func PublicSlug() (string, error) {
	buf := make([]byte, slugBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
