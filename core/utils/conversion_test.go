package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Object Text", "Object Text"},
		{"bytes", []byte("CR-7"), "CR-7"},
		{"int", 14, "14"},
		{"int64", int64(100), "100"},
		{"integral float", float64(31), "31"},
		{"fraction", 0.5, "0.5"},
		{"float32", float32(2.25), "2.25"},
		{"bool", true, "true"},
		{"time", ts, "2024-03-01T12:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToStrings(t *testing.T) {
	assert.Equal(t, "A, B, 3", ToStrings([]any{"A", " B ", nil, float64(3)}))
	assert.Equal(t, "", ToStrings(nil))
}
