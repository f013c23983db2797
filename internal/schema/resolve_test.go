package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpass/internal/api"
)

func decode(t *testing.T, raw string) Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestStringPrefersFirstKey(t *testing.T) {
	doc := decode(t, `{"title": "A", "name": "B"}`)
	got, err := String(doc, "", "title", "name")
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestStringFallsBack(t *testing.T) {
	doc := decode(t, `{"name": "B"}`)
	got, err := String(doc, "", "title", "name")
	require.NoError(t, err)
	assert.Equal(t, "B", got)
}

func TestStringDefaultsWhenAbsent(t *testing.T) {
	got, err := String(Document{}, "fallback", "title")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestNullCountsAsAbsent(t *testing.T) {
	doc := decode(t, `{"title": null, "name": "B"}`)
	got, err := String(doc, "", "title", "name")
	require.NoError(t, err)
	assert.Equal(t, "B", got)
}

func TestStringRejectsWrongType(t *testing.T) {
	doc := decode(t, `{"title": 7}`)
	_, err := String(doc, "", "title")
	require.Error(t, err)
	assert.Equal(t, api.KindSchema, api.AsError(err).Kind)
}

func TestOptionalStringAbsentIsNil(t *testing.T) {
	got, err := OptionalString(Document{}, "description")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIntSynonymPrecedence(t *testing.T) {
	doc := decode(t, `{"total_tickets": 50, "total_capacity": 80}`)
	got, err := Int(doc, 0, "total_tickets", "total_capacity")
	require.NoError(t, err)
	assert.Equal(t, 50, got)
}

func TestIntRejectsFraction(t *testing.T) {
	doc := decode(t, `{"total_tickets": 50.5}`)
	_, err := Int(doc, 0, "total_tickets")
	require.Error(t, err)
	assert.Equal(t, api.KindSchema, api.AsError(err).Kind)
}

func TestIntRejectsString(t *testing.T) {
	doc := decode(t, `{"total_tickets": "50"}`)
	_, err := Int(doc, 0, "total_tickets")
	require.Error(t, err)
}

func TestBoolDefault(t *testing.T) {
	got, err := Bool(Document{}, false, "is_favorite", "is_favorited")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIdentifierAcceptsNumber(t *testing.T) {
	doc := decode(t, `{"id": 42}`)
	got, err := Identifier(doc, "id")
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestIdentifierAcceptsString(t *testing.T) {
	doc := decode(t, `{"id": "abc-1"}`)
	got, err := Identifier(doc, "id")
	require.NoError(t, err)
	assert.Equal(t, "abc-1", got)
}

func TestIdentifierRejectsBool(t *testing.T) {
	doc := decode(t, `{"id": true}`)
	_, err := Identifier(doc, "id")
	require.Error(t, err)
}

func TestTextRendersNumber(t *testing.T) {
	doc := decode(t, `{"price": 12.5}`)
	got, err := Text(doc, "price")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "12.5", *got)
}

func TestObjectMalformedDegradesToAbsent(t *testing.T) {
	doc := decode(t, `{"creator": "not-an-object"}`)
	_, ok := Object(doc, "creator")
	assert.False(t, ok)
}

func TestListMalformedDegradesToAbsent(t *testing.T) {
	doc := decode(t, `{"participants": "oops"}`)
	_, ok := List(doc, "participants", "attendees")
	assert.False(t, ok)
}

func TestListSkipsMalformedElements(t *testing.T) {
	doc := decode(t, `{"participants": [{"id": 1}, "junk", {"id": 2}]}`)
	items, ok := List(doc, "participants")
	require.True(t, ok)
	assert.Len(t, items, 2)
}
