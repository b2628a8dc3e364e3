package fingerprint

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Signature carries both digests computed over a chart's canonical bytes:
// an HMAC-SHA3-256 signature keyed by the deployment's signing key, and an
// unkeyed BLAKE3 digest usable as a stable, shareable chart identifier
// even when the signing key is unavailable to the caller.
type Signature struct {
	HMAC   string
	Blake3 string
}

// Sign computes a chart's Signature. salt is public diversification
// material (e.g. a request ID); it need not be secret.
func Sign(canonical []byte, secret []byte, salt []byte) (Signature, error) {
	if len(secret) == 0 {
		return Signature{}, fmt.Errorf("fingerprint: signing key must not be empty")
	}

	h := hmac.New(sha3.New256, secret)
	if _, err := h.Write(salt); err != nil {
		return Signature{}, fmt.Errorf("fingerprint: failed to derive key: %w", err)
	}
	derivedKey := h.Sum(nil)

	h2 := hmac.New(sha3.New256, derivedKey)
	if _, err := h2.Write(canonical); err != nil {
		return Signature{}, fmt.Errorf("fingerprint: failed to compute signature: %w", err)
	}
	sig := hex.EncodeToString(h2.Sum(nil))

	b3 := blake3.New()
	if _, err := b3.Write(canonical); err != nil {
		return Signature{}, fmt.Errorf("fingerprint: failed to update blake3 with canonical: %w", err)
	}
	digest := hex.EncodeToString(b3.Sum(nil))

	return Signature{HMAC: sig, Blake3: digest}, nil
}
