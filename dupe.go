package imgfetch

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
)

// HashSHA256 returns the hex digest of the file at path.
func HashSHA256(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// FindDuplicate scans dir for a regular file whose SHA-256 digest equals
// digest, skipping the entry named exclude. Entries that cannot be read are
// skipped rather than failing the scan.
func FindDuplicate(dir, digest, exclude string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == exclude {
			continue
		}
		sum, err := HashSHA256(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if sum == digest {
			return entry.Name(), nil
		}
	}
	return "", nil
}
