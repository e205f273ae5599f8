package syncfeed

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		position Position
	}{
		{"zero position", Position{ChangedAt: 0, ID: "a"}},
		{"typical position", Position{ChangedAt: 1717243200000000, ID: "3f0c9a2e-7b1d-4e5f-9c8b-2a6d4e8f0c1b"}},
		{"same second different micros", Position{ChangedAt: 1717243200000001, ID: "b"}},
		{"id with separator char", Position{ChangedAt: 42, ID: "left:right"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := EncodeCursor(tt.position)
			require.NotEmpty(t, token)

			decoded, ok := DecodeCursor(token)
			require.True(t, ok, "encoded cursor must decode")
			assert.Equal(t, tt.position, decoded, "round trip must preserve position")
		})
	}
}

func TestDecodeCursor_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"plain garbage", "garbage"},
		{"invalid base64", "!!!not-base64!!!"},
		{"no separator", base64.RawURLEncoding.EncodeToString([]byte("1717243200000000"))},
		{"empty timestamp", base64.RawURLEncoding.EncodeToString([]byte(":some-id"))},
		{"empty id", base64.RawURLEncoding.EncodeToString([]byte("123:"))},
		{"non numeric timestamp", base64.RawURLEncoding.EncodeToString([]byte("abc:some-id"))},
		{"whitespace timestamp", base64.RawURLEncoding.EncodeToString([]byte(" 123:some-id"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := DecodeCursor(tt.token)

			assert.False(t, ok, "malformed cursor must decode as absent")
			assert.Equal(t, Position{}, pos, "malformed cursor must yield zero position")
		})
	}
}

func TestPosition_Less(t *testing.T) {
	tests := []struct {
		name string
		p    Position
		q    Position
		want bool
	}{
		{"earlier timestamp", Position{ChangedAt: 1, ID: "z"}, Position{ChangedAt: 2, ID: "a"}, true},
		{"later timestamp", Position{ChangedAt: 2, ID: "a"}, Position{ChangedAt: 1, ID: "z"}, false},
		{"equal timestamp smaller id", Position{ChangedAt: 5, ID: "a"}, Position{ChangedAt: 5, ID: "b"}, true},
		{"equal timestamp larger id", Position{ChangedAt: 5, ID: "b"}, Position{ChangedAt: 5, ID: "a"}, false},
		{"identical positions", Position{ChangedAt: 5, ID: "a"}, Position{ChangedAt: 5, ID: "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Less(tt.q))
		})
	}
}
