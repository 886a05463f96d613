package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVaultStorage_Save_SaltErrorWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeyChain := mock.NewMockKeyChainService(ctrl)
	s, path := newTestStorage(t, mockKeyChain)

	entropyErr := errors.New("entropy exhausted")
	mockKeyChain.EXPECT().GenerateSalt().Return(nil, entropyErr)

	err := s.Save(context.Background(), sampleEntries, "pw")
	assert.ErrorIs(t, err, entropyErr)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestVaultStorage_Save_UsesDerivedKeyAndSalt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeyChain := mock.NewMockKeyChainService(ctrl)
	s, path := newTestStorage(t, mockKeyChain)

	salt := []byte("0123456789abcdef")
	key := []byte("derived-key")
	blob := []byte("sealed-blob")

	gomock.InOrder(
		mockKeyChain.EXPECT().GenerateSalt().Return(salt, nil),
		mockKeyChain.EXPECT().DeriveKey("pw", salt).Return(key),
		mockKeyChain.EXPECT().Encrypt(gomock.Any(), key).Return(blob, nil),
	)

	require.NoError(t, s.Save(context.Background(), sampleEntries, "pw"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	gotSalt, gotBlob, err := splitHeader(data)
	require.NoError(t, err)
	assert.Equal(t, salt, gotSalt)
	assert.Equal(t, blob, gotBlob)
}

func TestVaultStorage_Load_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		decryptErr error
		wantErr    error
	}{
		{
			name:       "authentication failure means wrong password",
			decryptErr: fmt.Errorf("%w: cipher: message authentication failed", crypto.ErrDecryptionFailed),
			wantErr:    ErrWrongPassword,
		},
		{
			name:       "truncated ciphertext means corrupted vault",
			decryptErr: crypto.ErrCiphertextTooShort,
			wantErr:    ErrCorruptedVault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockKeyChain := mock.NewMockKeyChainService(ctrl)
			s, path := newTestStorage(t, mockKeyChain)

			salt := []byte("0123456789abcdef")
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
			require.NoError(t, os.WriteFile(path, joinHeader(salt, []byte("blob")), 0o600))

			gomock.InOrder(
				mockKeyChain.EXPECT().DeriveKey("pw", salt).Return([]byte("key")),
				mockKeyChain.EXPECT().Decrypt([]byte("blob"), []byte("key")).Return(nil, tt.decryptErr),
			)

			_, err := s.Load(context.Background(), "pw")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
