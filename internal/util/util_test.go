package util

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.True(t, IsULID(a))
	assert.False(t, IsULID("not-a-ulid"))
}

func TestNullStringHelpers(t *testing.T) {
	assert.False(t, StringPtrToNullString(nil).Valid)

	s := "2024-03-01"
	ns := StringPtrToNullString(&s)
	assert.Equal(t, sql.NullString{String: s, Valid: true}, ns)

	assert.Nil(t, NullStringToPtr(sql.NullString{}))
	if p := NullStringToPtr(ns); assert.NotNil(t, p) {
		assert.Equal(t, s, *p)
	}
}
