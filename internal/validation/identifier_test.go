package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		errMsg  string
		wantErr bool
	}{
		{
			name:  "firestore document id",
			value: "Xk3p9QzL0aBcDeFgHiJk",
		},
		{
			name:  "firebase uid",
			value: "user123",
		},
		{
			name:  "uuid",
			value: "6f1c2b1e-8d4a-4c3e-9b7a-2f5d1e0c9a11",
		},
		{
			name:  "underscore",
			value: "event_2024",
		},
		{
			name:  "max length",
			value: strings.Repeat("a", MaxIdentifierLen),
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
			errMsg:  "eventId cannot be empty",
		},
		{
			name:    "too long",
			value:   strings.Repeat("a", MaxIdentifierLen+1),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "path traversal",
			value:   "../admin",
			wantErr: true,
			errMsg:  "can only contain",
		},
		{
			name:    "colon",
			value:   "a:b",
			wantErr: true,
			errMsg:  "can only contain",
		},
		{
			name:    "whitespace",
			value:   "evt 1",
			wantErr: true,
			errMsg:  "can only contain",
		},
		{
			name:    "unicode",
			value:   "событие",
			wantErr: true,
			errMsg:  "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier("eventId", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}
