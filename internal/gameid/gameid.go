// Package gameid generates sortable identifiers for games: a UUIDv7
// rendered as 26 characters of lower-case Crockford base32.
package gameid

import (
	"encoding/base32"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// idLength is the length of every generated ID
const idLength = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generate creates a new game ID using crypto/rand
func Generate() string {
	return generate(nil)
}

// generate draws the random bits from r, or crypto/rand when r is nil
func generate(r io.Reader) string {
	var (
		id  uuid.UUID
		err error
	)
	if r != nil {
		id, err = uuid.NewV7FromReader(r)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate game id: " + err.Error())
	}
	return encode(id)
}

func encode(id uuid.UUID) string {
	return encoding.EncodeToString(id[:])
}
