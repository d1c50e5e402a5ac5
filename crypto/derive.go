package crypto

import (
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Derive stretches a password into key material using PBKDF2 with the given
// digest algorithm. It produces exactly keyLength bytes of raw output; the
// returned buffer's declared length equals keyLength.
//
// The iteration count dominates the cost of the call. Keep derivation off
// latency-sensitive paths; the primitive cannot be interrupted mid-run.
func Derive(alg Algorithm, password, salt ByteBuffer, iterationCount, keyLength int) (ByteBuffer, error) {
	if iterationCount <= 0 {
		return ByteBuffer{}, fmt.Errorf("%w: iteration count %d must be positive", ErrInvalidParameter, iterationCount)
	}
	if keyLength <= 0 {
		return ByteBuffer{}, fmt.Errorf("%w: key length %d must be positive", ErrInvalidParameter, keyLength)
	}

	ctor, err := alg.newDigest()
	if err != nil {
		return ByteBuffer{}, err
	}

	key := pbkdf2.Key(password.Bytes(), salt.Bytes(), iterationCount, keyLength, ctor)
	return wrapBytes(key, keyLength), nil
}

// DeriveKey runs Derive with the wallet-derivation defaults: 6000 iterations
// and a 64-byte key.
func DeriveKey(alg Algorithm, password, salt ByteBuffer) (ByteBuffer, error) {
	return Derive(alg, password, salt, DefaultIterationCount, DefaultKeyLength)
}
