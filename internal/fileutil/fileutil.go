// Package fileutil provides small file helpers shared by the commands.
package fileutil

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// WriteFileLocked writes data to path while holding an advisory lock on a
// sibling .lock file, so concurrent runs against the same project cannot
// interleave partial output.
func WriteFileLocked(path string, data []byte, mode os.FileMode) error {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return fmt.Errorf("another run is writing %s", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
