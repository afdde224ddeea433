package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

// Save writes the raw payload to path verbatim. The file is replaced
// atomically so an interrupted fetch never leaves a truncated cache.
func Save(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create cache directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary cache file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write cache file %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close cache file %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to move cache file into place at %s", path)
	}
	return nil
}

// Load reads a payload previously written by Save
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(models.ErrCacheMissing, "no cache at %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read cache file %s", path)
	}
	return data, nil
}

// Age returns how long ago the cache at path was written
func Age(path string) (time.Duration, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrapf(models.ErrCacheMissing, "no cache at %s", path)
		}
		return 0, errors.Wrapf(err, "failed to stat cache file %s", path)
	}
	return time.Since(info.ModTime()), nil
}

// Stale reports whether the cache needs a refresh. A maxAge of zero means
// the cache never expires.
func Stale(path string, maxAge time.Duration) bool {
	age, err := Age(path)
	if err != nil {
		return true
	}
	return maxAge > 0 && age > maxAge
}
