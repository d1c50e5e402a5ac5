package crypto

import "fmt"

// Encrypt will encrypt a message from sender to recipient. The wire format
// for encrypted messages has not been finalized, so the operation always
// fails with ErrNotImplemented; no cipher is assumed in the meantime.
func Encrypt(plaintext ByteBuffer, recipient, sender *KeyPair) (ByteBuffer, error) {
	return ByteBuffer{}, fmt.Errorf("%w: message encryption", ErrNotImplemented)
}

// Decrypt is the counterpart of Encrypt and is equally unimplemented.
func Decrypt(payload ByteBuffer, recipient, sender *KeyPair) (ByteBuffer, error) {
	return ByteBuffer{}, fmt.Errorf("%w: message decryption", ErrNotImplemented)
}
