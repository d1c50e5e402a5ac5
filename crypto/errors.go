package crypto

import "errors"

var (
	// ErrInvalidParameter is returned when a numeric parameter that must be
	// positive (key length, iteration count, checksum length, declared buffer
	// length) is zero, negative, or out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedAlgorithm is returned when an algorithm name is not
	// recognized by any dispatch branch.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrBackendFailure is returned when an algorithm is recognized by this
	// layer's dispatch but the underlying digest backend cannot provide it
	// in this runtime.
	ErrBackendFailure = errors.New("digest backend failure")

	// ErrNotImplemented is returned by operations whose wire format has not
	// been finalized.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")
)
