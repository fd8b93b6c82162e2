package normalize

import (
	"testing"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var normalizeSamples = []string{
	"",
	"Die Bremse ",
	"  Die\tBremse\nmuss greifen; sofort  ",
	"“Quoted” and ‘single’ «angle»",
	"Wait … then – go — now",
	"a ? b",
	"? leading",
	"trailing ?",
	"\"?\"",
	"x?y",
	"??",
	"soft\u00adhyphen zero\u200bwidth bom\ufeff",
	"CR-123 / REQ.4 : A",
	"OLE OLE ObjectObject text",
	"<<ERROR: embedded object 12 does not exist>> Text",
	"5 µm vs 5 ?m",
	"A½B │ C",
	"/?",
	"Straße STRASSE",
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err)
		for _, s := range normalizeSamples {
			once := Normalize(s, p)
			assert.Equal(t, once, Normalize(once, p), "profile %s, input %q", name, s)
		}
	}
}

func TestNormalize_Default(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"Trailing whitespace", "Die Bremse", "Die Bremse "},
		{"Whitespace kinds", "Die Bremse muss", "Die\tBremse\nmuss "},
		{"Zero width", "Bremse", "Brem\u200bse\ufeff"},
		{"Soft hyphen", "Bremskraft", "Brems\u00adkraft"},
		{"Quotes", "\"Bremse\"", "„Bremse“"},
		{"Apostrophes", "it's", "it’s"},
		{"Semicolons", "A; B", "A B"},
		{"Ellipsis", "warten...", "warten…"},
		{"Dashes", "A - B", "A – B"},
		{"Em dash", "A-B", "A—B"},
		{"Vertical bar", "A|B", "A½B"},
		{"Box drawing", "A|B", "A│B"},
		{"Lone question mark", "A B", "A ? B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Normalize(tt.a, Default), Normalize(tt.b, Default))
		})
	}
}

func TestNormalize_KeepsRealChanges(t *testing.T) {
	assert.NotEqual(t, Normalize("Die Bremse", Default), Normalize("Die Bremsen", Default))
	assert.NotEqual(t, Normalize("A", Default), Normalize("B", Default))
	assert.NotEqual(t, Normalize("Bremse", Default), Normalize("bremse", Default), "default keeps case")
	assert.Equal(t, "x?y", Normalize("x?y", Default), "embedded question mark is content")
}

func TestNormalize_StrictWording(t *testing.T) {
	assert.NotEqual(t, Normalize("A B", StrictWording), Normalize("A ? B", StrictWording))
	assert.NotEqual(t, Normalize("Text OLE Object", StrictWording), Normalize("Text", StrictWording))
}

func TestNormalize_SymbolTolerant(t *testing.T) {
	assert.Equal(t,
		Normalize("Text OLE Object more", SymbolTolerant),
		Normalize("Text <<ERROR: embedded object 7 does not exist>> more", SymbolTolerant))
	assert.Equal(t, Normalize("5 µm", SymbolTolerant), Normalize("5 μm", SymbolTolerant))
	assert.Equal(t, Normalize("5 µm", SymbolTolerant), Normalize("5 ?m", SymbolTolerant))
	assert.NotEqual(t, Normalize("5 µm", Default), Normalize("5 μm", Default))
}

func TestNormalize_LegacyIdentifier(t *testing.T) {
	assert.Equal(t, Normalize("CR-123 / REQ.4", LegacyIdentifier), Normalize("cr-123 /req.4", LegacyIdentifier))
	assert.Equal(t, "cr-123req.4", Normalize("CR-123/ REQ.4", LegacyIdentifier))
	assert.Equal(t, "cr123req,4", Normalize("CR 123 : REQ,4;", LegacyIdentifier))
	assert.NotEqual(t, Normalize("1.2", LegacyIdentifier), Normalize("12", LegacyIdentifier))
	assert.Equal(t, "ab", Normalize("- A -- B .", LegacyIdentifier))
	assert.Equal(t, Normalize("STRASSE", LegacyIdentifier), Normalize("strasse", LegacyIdentifier))
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "", NormalizeValue(record.Absent(), Default))
	assert.Equal(t, "", NormalizeValue(record.Empty(), Default))
	assert.Equal(t, "n/a", NormalizeValue(record.Scalar(" n/a "), Default))
}

func TestLookup(t *testing.T) {
	p, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, ProfileDefault, p.Name)

	p, err = Lookup(ProfileLegacyIdentifier)
	require.NoError(t, err)
	assert.True(t, p.FoldCase)

	_, err = Lookup("lenient")
	assert.True(t, errors.Is(err, errors.ErrUnknownProfile))

	assert.Equal(t, []string{"default", "legacy-identifier", "strict-wording", "symbol-tolerant"}, Names())
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Die \"Bremse\" - jetzt...", Display("  Die  “Bremse” –\njetzt… "))
	assert.Equal(t, "A|B", Display("A½B"))
	assert.Equal(t, "", Display(" \u200b "))
}
