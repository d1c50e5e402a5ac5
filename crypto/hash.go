package crypto

import "fmt"

// Hash computes the digest of data with the given algorithm. The digest is
// returned in raw binary form; the buffer's declared length is the
// algorithm's natural digest size.
func Hash(alg Algorithm, data ByteBuffer) (ByteBuffer, error) {
	ctor, err := alg.newDigest()
	if err != nil {
		return ByteBuffer{}, err
	}

	h := ctor()
	h.Write(data.Bytes())
	digest := h.Sum(nil)
	return wrapBytes(digest, len(digest)), nil
}

// Checksum computes the digest of data and truncates it to the first
// checksumLength bytes, for use as a short integrity tag. checksumLength
// must be positive and must not exceed the algorithm's natural digest
// length.
func Checksum(alg Algorithm, data ByteBuffer, checksumLength int) (ByteBuffer, error) {
	if checksumLength <= 0 {
		return ByteBuffer{}, fmt.Errorf("%w: checksum length %d must be positive", ErrInvalidParameter, checksumLength)
	}

	size, err := alg.digestSize()
	if err != nil {
		return ByteBuffer{}, err
	}
	if checksumLength > size {
		return ByteBuffer{}, fmt.Errorf("%w: checksum length %d exceeds %v digest length %d", ErrInvalidParameter, checksumLength, alg, size)
	}

	digest, err := Hash(alg, data)
	if err != nil {
		return ByteBuffer{}, err
	}
	return wrapBytes(digest.Bytes()[:checksumLength], checksumLength), nil
}
