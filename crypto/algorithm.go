package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a digest algorithm supported by the primitives layer.
// It is a closed variant: values are either one of the standard digests
// exported below or a Keccak digest carrying its output bit length. Resolve
// caller-supplied algorithm names once at the boundary with ParseAlgorithm.
type Algorithm struct {
	id   algorithmID
	bits int // Keccak output bit length; zero for standard digests
}

type algorithmID uint8

const (
	algUnknown algorithmID = iota
	algMD5
	algSHA1
	algSHA224
	algSHA256
	algSHA384
	algSHA512
	algSHA3_224
	algSHA3_256
	algSHA3_384
	algSHA3_512
	algRIPEMD160
	algBLAKE2b256
	algBLAKE2b512
	algKeccak
)

// Standard digest algorithms, named after the stdlib crypto.Hash constants.
var (
	MD5        = Algorithm{id: algMD5}
	SHA1       = Algorithm{id: algSHA1}
	SHA224     = Algorithm{id: algSHA224}
	SHA256     = Algorithm{id: algSHA256}
	SHA384     = Algorithm{id: algSHA384}
	SHA512     = Algorithm{id: algSHA512}
	SHA3_224   = Algorithm{id: algSHA3_224}
	SHA3_256   = Algorithm{id: algSHA3_256}
	SHA3_384   = Algorithm{id: algSHA3_384}
	SHA3_512   = Algorithm{id: algSHA3_512}
	RIPEMD160  = Algorithm{id: algRIPEMD160}
	BLAKE2b256 = Algorithm{id: algBLAKE2b256}
	BLAKE2b512 = Algorithm{id: algBLAKE2b512}
)

// Keccak returns the Keccak digest algorithm with the given output bit
// length. Whether the backend can actually provide that length is checked
// when the algorithm is used.
func Keccak(bits int) Algorithm {
	return Algorithm{id: algKeccak, bits: bits}
}

// canonical name → standard algorithm. Checked before the keccak branch, so
// a name in this table can never be mistaken for a Keccak variant.
var standardNames = map[string]Algorithm{
	"md5":         MD5,
	"sha1":        SHA1,
	"sha224":      SHA224,
	"sha256":      SHA256,
	"sha384":      SHA384,
	"sha512":      SHA512,
	"sha3-224":    SHA3_224,
	"sha3-256":    SHA3_256,
	"sha3-384":    SHA3_384,
	"sha3-512":    SHA3_512,
	"ripemd160":   RIPEMD160,
	"blake2b-256": BLAKE2b256,
	"blake2b-512": BLAKE2b512,
}

// ParseAlgorithm resolves an algorithm name to its closed variant.
//
// Matching is case-insensitive and evaluated in priority order: the standard
// digest table first, then the Keccak family. A name belongs to the Keccak
// family when it contains the substring "keccak"; its output bit length is
// parsed from the literal last three characters of the name ("keccak-256" →
// 256). Existing callers depend on that exact rule, so it is not a split on
// '-'. Anything else fails with ErrUnsupportedAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if alg, ok := standardNames[normalized]; ok {
		return alg, nil
	}

	if strings.Contains(normalized, "keccak") {
		bits, err := strconv.Atoi(normalized[len(normalized)-3:])
		if err != nil || bits <= 0 {
			return Algorithm{}, fmt.Errorf("%w: %q has no parsable keccak bit length", ErrUnsupportedAlgorithm, name)
		}
		return Keccak(bits), nil
	}

	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// String returns the canonical lower-case algorithm name.
func (a Algorithm) String() string {
	if a.id == algKeccak {
		return fmt.Sprintf("keccak-%d", a.bits)
	}
	for name, alg := range standardNames {
		if alg.id == a.id {
			return name
		}
	}
	return "unknown"
}

// newDigest resolves the algorithm to a digest constructor on the backend.
// Unrecognized variants fail with ErrUnsupportedAlgorithm; Keccak bit
// lengths the backend does not provide fail with ErrBackendFailure.
func (a Algorithm) newDigest() (func() hash.Hash, error) {
	switch a.id {
	case algMD5:
		return md5.New, nil
	case algSHA1:
		return sha1.New, nil
	case algSHA224:
		return sha256.New224, nil
	case algSHA256:
		return sha256.New, nil
	case algSHA384:
		return sha512.New384, nil
	case algSHA512:
		return sha512.New, nil
	case algSHA3_224:
		return sha3.New224, nil
	case algSHA3_256:
		return sha3.New256, nil
	case algSHA3_384:
		return sha3.New384, nil
	case algSHA3_512:
		return sha3.New512, nil
	case algRIPEMD160:
		return ripemd160.New, nil
	case algBLAKE2b256:
		return newBLAKE2b(blake2b.New256), nil
	case algBLAKE2b512:
		return newBLAKE2b(blake2b.New512), nil
	case algKeccak:
		switch a.bits {
		case 256:
			return sha3.NewLegacyKeccak256, nil
		case 512:
			return sha3.NewLegacyKeccak512, nil
		default:
			return nil, fmt.Errorf("%w: keccak-%d digest not available in this runtime", ErrBackendFailure, a.bits)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

// digestSize returns the natural digest length of the algorithm in bytes.
func (a Algorithm) digestSize() (int, error) {
	ctor, err := a.newDigest()
	if err != nil {
		return 0, err
	}
	return ctor().Size(), nil
}

// newBLAKE2b adapts the keyed blake2b constructors to the unkeyed
// hash.Hash shape the other backends use. The error is unreachable for a
// nil key.
func newBLAKE2b(ctor func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, _ := ctor(nil) // err is always nil for an unkeyed digest
		return h
	}
}
