// Package crypto provides the symmetric cryptographic primitives used by the
// NEM-lineage SDK: password-based key derivation, multi-algorithm hashing,
// keyed message authentication, and digest truncation into short checksums.
//
// All primitives operate on [ByteBuffer], an immutable fixed-length byte
// value, rather than on raw slices. Callers wrap plaintext and key material
// in buffers, pass them in, and receive new buffers back; inputs are never
// mutated and no partial results are ever returned.
//
// # Algorithm Selection
//
// Digest algorithms are identified by the closed [Algorithm] type. Wallet
// files and remote payloads name algorithms as strings; resolve those once
// at the boundary with [ParseAlgorithm]:
//
//	alg, err := crypto.ParseAlgorithm("keccak-256")
//	if err != nil {
//	    return err
//	}
//	digest, err := crypto.Hash(alg, data)
//
// Standard digests (MD and SHA families, RIPEMD-160, BLAKE2b) take priority
// over the Keccak name family: a name that matches the standard table never
// reaches the keccak branch. Keccak names carry their output bit length in
// the literal last three characters of the string ("keccak-256" → 256 bits);
// that parsing rule is load-bearing for compatibility with existing callers
// and must not be changed to a semantic split on '-'.
//
// # Key Derivation
//
// [Derive] runs PBKDF2 with the named digest. The defaults (6000 iterations,
// 64-byte output) follow the wallet-derivation convention used across the
// NEM lineage; [DeriveKey] applies them.
//
// # Concurrency
//
// Every operation is a pure function of its arguments with no shared state;
// the package is safe for concurrent use without locking. Derivation cost
// grows linearly with the iteration count — keep it off latency-sensitive
// paths.
//
// # Key Management
//
// Use [GenerateKeyPair] to create an Ed25519 key pair for the account
// boundary. Keep secret keys secure: they should never be logged,
// transmitted in plaintext, or stored in version control. ByteBuffer's
// String method truncates its hex form so large key material does not leak
// into logs wholesale.
package crypto
