package fingerprint

import (
	"encoding/hex"
	"fmt"
	"os"
	"sync"
)

var (
	keyOnce sync.Once
	key     []byte
	keyErr  error
)

// LoadSigningKey loads and caches the fingerprint signing key from the
// BAZI_FINGERPRINT_KEY environment variable. The key must be a hex string
// representing either 32 or 64 bytes. The raw key material is never
// logged.
func LoadSigningKey() ([]byte, error) {
	keyOnce.Do(func() {
		value := os.Getenv("BAZI_FINGERPRINT_KEY")
		if value == "" {
			keyErr = fmt.Errorf("BAZI_FINGERPRINT_KEY is not set")
			return
		}

		decoded, err := hex.DecodeString(value)
		if err != nil {
			keyErr = fmt.Errorf("invalid BAZI_FINGERPRINT_KEY hex encoding: %w", err)
			return
		}

		if l := len(decoded); l != 32 && l != 64 {
			keyErr = fmt.Errorf("BAZI_FINGERPRINT_KEY must be 32 or 64 bytes, got %d bytes", l)
			return
		}

		key = decoded
	})

	return key, keyErr
}
