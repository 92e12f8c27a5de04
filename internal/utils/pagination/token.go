package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeCursor creates an opaque keyset cursor from the creation time and ID
// of the last row on a page. Listing continues strictly after that row, so
// pages stay stable while new transactions are appended.
func EncodeCursor(createdAt time.Time, transactionID string) string {
	return EncodeMultiFieldToken(createdAt.Format(timeFormat), transactionID)
}

// DecodeCursor parses a cursor back into its creation time and transaction ID.
func DecodeCursor(token string) (time.Time, string, error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return time.Time{}, "", err
	}
	if len(fields) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (field count)")
	}
	createdAt, err := time.Parse(timeFormat, fields[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (time parse): %w", err)
	}
	return createdAt, fields[1], nil
}

// EncodeMultiFieldToken joins arbitrary fields into a base64 token. Fields
// must not contain the pipe separator.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken splits a base64 token back into its fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decoded), "|"), nil
}
