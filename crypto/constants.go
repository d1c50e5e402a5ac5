package crypto

const (
	// DefaultIterationCount is the PBKDF2 iteration count used by DeriveKey.
	// It follows the wallet-derivation convention of the NEM lineage.
	DefaultIterationCount = 6000

	// DefaultKeyLength is the derived key length in bytes used by DeriveKey.
	DefaultKeyLength = 64

	// DefaultChecksumLength is the checksum length in bytes used when
	// truncating a digest into a short integrity tag.
	DefaultChecksumLength = 4
)
