package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		wantStored func(t *testing.T, stored string)
	}{
		{
			name: "plain stores as given",
			mode: ModePlain,
			wantStored: func(t *testing.T, stored string) {
				assert.Equal(t, "password123", stored)
			},
		},
		{
			name: "unknown mode falls back to plain",
			mode: "argon",
			wantStored: func(t *testing.T, stored string) {
				assert.Equal(t, "password123", stored)
			},
		},
		{
			name: "bcrypt",
			mode: ModeBcrypt,
			wantStored: func(t *testing.T, stored string) {
				assert.True(t, strings.HasPrefix(stored, "$2"))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.mode)
			stored, err := h.Hash("password123")
			require.NoError(t, err)
			tt.wantStored(t, stored)

			assert.True(t, h.Compare(stored, "password123"))
			assert.False(t, h.Compare(stored, "password124"))
			assert.False(t, h.Compare(stored, ""))
		})
	}
}
