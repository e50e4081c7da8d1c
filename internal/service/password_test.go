package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		length       int
		specialChars bool
		wantErr      bool
	}{
		{"default length", DefaultPasswordLength, false, false},
		{"minimum length", 1, false, false},
		{"maximum length", 256, false, false},
		{"with special chars", 32, true, false},
		{"zero length", 0, false, true},
		{"negative length", -5, false, true},
		{"over maximum", 257, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := GeneratePassword(tt.length, tt.specialChars)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.length)

			charset := passwordLetters + passwordDigits
			if tt.specialChars {
				charset += passwordSpecial
			}
			for _, c := range got {
				assert.True(t, strings.ContainsRune(charset, c),
					"unexpected character %q in password", c)
			}
		})
	}
}

func TestGeneratePasswordNoSpecialCharsByDefault(t *testing.T) {
	t.Parallel()

	// Long enough that a special character would almost surely appear
	// if the flag leaked into the charset.
	got, err := GeneratePassword(MaxPasswordLength, false)
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(got, passwordSpecial))
}

func TestGeneratePasswordUnique(t *testing.T) {
	t.Parallel()

	a, err := GeneratePassword(32, true)
	require.NoError(t, err)
	b, err := GeneratePassword(32, true)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
