package crypto

import (
	"errors"
	"testing"
)

func TestDerive_KnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		alg        Algorithm
		password   string
		salt       string
		iterations int
		keyLength  int
		wantHex    string
	}{
		{
			name:       "sha256 wallet defaults",
			alg:        SHA256,
			password:   "correcthorse",
			salt:       "saltsaltsalt",
			iterations: 6000,
			keyLength:  64,
			wantHex: "4a1cbed2a72c756889934b42019882f37f1bad97132ef28e55364cd53926c551" +
				"2375f680d1ab10bfe6e6bf178345aeacf9d28040ef59bbbe07b3a654f9a7d5a6",
		},
		{
			name:       "sha1 wallet defaults",
			alg:        SHA1,
			password:   "password",
			salt:       "salt",
			iterations: 6000,
			keyLength:  64,
			wantHex: "2afdd651c5a2c62442e06d3bfd5404b000bb82c64bcfc7c02adb5112fa86b058" +
				"2c3786634b0a217b5987961e4864343c972531518d79f495827aa4432f58f66d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password := NewByteBuffer([]byte(tt.password))
			salt := NewByteBuffer([]byte(tt.salt))

			key, err := Derive(tt.alg, password, salt, tt.iterations, tt.keyLength)
			if err != nil {
				t.Fatalf("Derive() error = %v", err)
			}
			if key.Length() != tt.keyLength {
				t.Errorf("Length() = %d, want %d", key.Length(), tt.keyLength)
			}
			if key.Size() != tt.keyLength {
				t.Errorf("Size() = %d, want %d", key.Size(), tt.keyLength)
			}
			if key.Hex() != tt.wantHex {
				t.Errorf("Derive() = %s, want %s", key.Hex(), tt.wantHex)
			}
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	password := NewByteBuffer([]byte("correcthorse"))
	salt := NewByteBuffer([]byte("saltsaltsalt"))

	first, err := Derive(SHA256, password, salt, 6000, 64)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Derive(SHA256, password, salt, 6000, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) {
		t.Error("identical inputs produced different keys")
	}
}

func TestDerive_ParameterSensitivity(t *testing.T) {
	password := NewByteBuffer([]byte("correcthorse"))
	salt := NewByteBuffer([]byte("saltsaltsalt"))

	base, err := Derive(SHA256, password, salt, 100, 32)
	if err != nil {
		t.Fatal(err)
	}

	variants := []struct {
		name string
		run  func() (ByteBuffer, error)
	}{
		{"different algorithm", func() (ByteBuffer, error) {
			return Derive(SHA512, password, salt, 100, 32)
		}},
		{"different password", func() (ByteBuffer, error) {
			return Derive(SHA256, NewByteBuffer([]byte("wronghorse")), salt, 100, 32)
		}},
		{"different salt", func() (ByteBuffer, error) {
			return Derive(SHA256, password, NewByteBuffer([]byte("pepper")), 100, 32)
		}},
		{"different iteration count", func() (ByteBuffer, error) {
			return Derive(SHA256, password, salt, 101, 32)
		}},
	}

	for _, tt := range variants {
		t.Run(tt.name, func(t *testing.T) {
			key, err := tt.run()
			if err != nil {
				t.Fatalf("Derive() error = %v", err)
			}
			if key.Equal(base) {
				t.Error("changed parameter produced an identical key")
			}
		})
	}
}

func TestDerive_ExactOutputLength(t *testing.T) {
	password := NewByteBuffer([]byte("pw"))
	salt := NewByteBuffer([]byte("na"))

	for _, keyLength := range []int{1, 4, 16, 20, 32, 33, 64, 100} {
		key, err := Derive(SHA256, password, salt, 10, keyLength)
		if err != nil {
			t.Fatalf("Derive(keyLength=%d) error = %v", keyLength, err)
		}
		if key.Size() != keyLength {
			t.Errorf("Derive(keyLength=%d) produced %d bytes", keyLength, key.Size())
		}
	}
}

func TestDerive_InvalidParameters(t *testing.T) {
	password := NewByteBuffer([]byte("pw"))
	salt := NewByteBuffer([]byte("na"))

	tests := []struct {
		name       string
		iterations int
		keyLength  int
	}{
		{"negative key length", 6000, -1},
		{"zero key length", 6000, 0},
		{"zero iterations", 0, 64},
		{"negative iterations", -5, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(SHA256, password, salt, tt.iterations, tt.keyLength)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestDerive_UnsupportedAlgorithm(t *testing.T) {
	password := NewByteBuffer([]byte("pw"))
	salt := NewByteBuffer([]byte("na"))

	if _, err := Derive(Algorithm{}, password, salt, 6000, 64); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}

	// Recognized keccak name, no backend support at that bit length.
	if _, err := Derive(Keccak(224), password, salt, 6000, 64); !errors.Is(err, ErrBackendFailure) {
		t.Errorf("expected ErrBackendFailure, got %v", err)
	}
}

func TestDeriveKey_AppliesDefaults(t *testing.T) {
	password := NewByteBuffer([]byte("correcthorse"))
	salt := NewByteBuffer([]byte("saltsaltsalt"))

	viaDefaults, err := DeriveKey(SHA256, password, salt)
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := Derive(SHA256, password, salt, DefaultIterationCount, DefaultKeyLength)
	if err != nil {
		t.Fatal(err)
	}

	if !viaDefaults.Equal(explicit) {
		t.Error("DeriveKey disagrees with Derive under the default parameters")
	}
	if viaDefaults.Length() != DefaultKeyLength {
		t.Errorf("Length() = %d, want %d", viaDefaults.Length(), DefaultKeyLength)
	}
}

func TestDerive_KeccakBackend(t *testing.T) {
	// PBKDF2 composes with any digest the backend resolves, keccak included.
	password := NewByteBuffer([]byte("pw"))
	salt := NewByteBuffer([]byte("na"))

	key, err := Derive(Keccak(256), password, salt, 10, 32)
	if err != nil {
		t.Fatalf("Derive(keccak-256) error = %v", err)
	}
	if key.Size() != 32 {
		t.Errorf("Size() = %d, want 32", key.Size())
	}
}
