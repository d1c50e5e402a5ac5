package crypto

import (
	"io"

	"github.com/cloudflare/circl/sign/ed25519"
)

// randReader is the random source used for key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

const (
	// PublicKeySize is the size of an Ed25519 public key in bytes.
	PublicKeySize = ed25519.PublicKeySize
	// SecretKeySize is the size of an Ed25519 secret key in bytes.
	SecretKeySize = ed25519.PrivateKeySize
	// SignatureSize is the size of an Ed25519 signature in bytes.
	SignatureSize = ed25519.SignatureSize

	// publicKeyOffset is the byte offset where the public key is embedded
	// within an Ed25519 secret key.
	publicKeyOffset = ed25519.SeedSize
)

// KeyPair holds the raw Ed25519 key material for an account. It is passed
// opaquely to the message encryption operations; higher layers own address
// derivation and transaction signing.
type KeyPair struct {
	// PublicKey is the raw Ed25519 public key bytes.
	PublicKey []byte
	// SecretKey is the raw Ed25519 secret key bytes.
	SecretKey []byte
}

// GenerateKeyPair creates a new Ed25519 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(randReader)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PublicKey: pub,
		SecretKey: priv,
	}, nil
}

// KeyPairFromSecretKey reconstructs a key pair from the secret key.
// The public key is embedded in the secret key at offset 32.
func KeyPairFromSecretKey(secretKey []byte) (*KeyPair, error) {
	if len(secretKey) != SecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, secretKey[publicKeyOffset:])

	return &KeyPair{
		PublicKey: publicKey,
		SecretKey: secretKey,
	}, nil
}

// Sign signs the message with the pair's secret key.
func (kp *KeyPair) Sign(message ByteBuffer) (ByteBuffer, error) {
	if len(kp.SecretKey) != SecretKeySize {
		return ByteBuffer{}, ErrInvalidSecretKeySize
	}

	sig := ed25519.Sign(ed25519.PrivateKey(kp.SecretKey), message.Bytes())
	return wrapBytes(sig, len(sig)), nil
}

// VerifySignature reports whether signature is a valid signature of message
// under publicKey.
func VerifySignature(publicKey []byte, message, signature ByteBuffer) bool {
	if len(publicKey) != PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message.Bytes(), signature.Bytes())
}
