package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(createdAt, "txn-001")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, createdAt.Equal(decodedAt), "Creation time should match after decode")
	assert.Equal(t, "txn-001", decodedID, "Transaction ID should match after decode")

	// zero time round-trips too
	zeroToken := EncodeCursor(time.Time{}, "txn-002")
	decodedZero, decodedID, err := DecodeCursor(zeroToken)
	assert.NoError(t, err)
	assert.True(t, decodedZero.IsZero(), "Zero time should survive the round trip")
	assert.Equal(t, "txn-002", decodedID)
}

func TestDecodeCursorError(t *testing.T) {
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// valid base64 but only one field
	_, _, err = DecodeCursor(EncodeMultiFieldToken("2026-03-15T00:00:00Z"))
	assert.Error(t, err, "Should return an error when the ID field is missing")
	assert.Contains(t, err.Error(), "field count")

	// two fields but an unparseable time
	_, _, err = DecodeCursor(EncodeMultiFieldToken("notadate", "txn-001"))
	assert.Error(t, err, "Should return an error for an invalid time")
	assert.Contains(t, err.Error(), "time parse")
}

func TestEncodeMultiFieldToken(t *testing.T) {
	fields := []string{"field1", "field2", "field3"}
	token := EncodeMultiFieldToken(fields...)

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, fields, decoded, "Fields should match after decode")

	// pipes inside a field split into extra fields
	decoded, err = DecodeMultiFieldToken(EncodeMultiFieldToken("a|b", "c"))
	assert.NoError(t, err)
	assert.Len(t, decoded, 3, "Should split on every pipe character")
}
