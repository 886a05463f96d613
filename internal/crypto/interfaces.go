// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all vault cryptography. It knows nothing about files
// or terminals; its only job is turning a master password into a key and
// sealing/opening blobs with it.
//
// Scheme:
//
//	Salt      = GenerateSalt()                 (step 1, on every save)
//	Key       = DeriveKey(password, salt)      (step 2, Argon2id)
//	Blob      = Encrypt(plaintext, Key)        (step 3, nonce ‖ ciphertext)
//	Plaintext = Decrypt(Blob, Key)             (on load)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not a secret; it is
	// stored in clear in the vault header.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from the master password and salt
	// with Argon2id. The key only ever lives in memory.
	DeriveKey(masterPassword string, salt []byte) []byte

	// Encrypt seals plaintext with AES-256-GCM and returns nonce ‖ ciphertext.
	Encrypt(plaintext, key []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Returns [ErrDecryptionFailed]
	// when the authentication tag does not match, which almost always means
	// the key was derived from a wrong password.
	Decrypt(blob, key []byte) ([]byte, error)
}
