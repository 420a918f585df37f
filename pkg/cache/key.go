package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactOpts are the export settings that shape the rendered output.
// Two exports with the same scene bytes but different options must not
// share an artifact.
type ArtifactOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// ArtifactKey derives the cache key for an export of the given scene.
func ArtifactKey(scene []byte, opts ArtifactOpts) string {
	meta, _ := json.Marshal(opts)
	h := sha256.New()
	h.Write(scene)
	h.Write(meta)
	return fmt.Sprintf("artifact:%s", hex.EncodeToString(h.Sum(nil)))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
