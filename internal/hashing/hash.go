// Package hashing fingerprints declarative payloads. encoding/json
// sorts map keys, so map-shaped payloads hash canonically.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Sum returns the hex SHA-256 of the canonical JSON encoding of v.
func Sum(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
