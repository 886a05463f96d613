package adapter

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClipboard_Copy(t *testing.T) {
	backendErr := errors.New("xclip: exit status 1")

	tests := []struct {
		name        string
		unsupported bool
		writeErr    error
		wantErr     error
		wantWritten string
	}{
		{
			name:        "copies text",
			wantWritten: "s3cret",
		},
		{
			name:        "unsupported platform",
			unsupported: true,
			wantErr:     ErrClipboardUnsupported,
		},
		{
			name:     "backend failure",
			writeErr: backendErr,
			wantErr:  ErrClipboardWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var written string
			c := &systemClipboard{
				unsupported: tt.unsupported,
				writeAll: func(text string) error {
					if tt.writeErr != nil {
						return tt.writeErr
					}
					written = text
					return nil
				},
				logger: logger.Nop(),
			}

			err := c.Copy("s3cret")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.writeErr != nil {
					assert.ErrorIs(t, err, tt.writeErr)
				}
				assert.Empty(t, written)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantWritten, written)
		})
	}
}

func TestNewSystemClipboard(t *testing.T) {
	c := NewSystemClipboard(logger.Nop())
	require.NotNil(t, c)
	assert.Implements(t, (*Clipboard)(nil), c)
}
