package util

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// WriteAtomic replaces filename with contents. It first tries an
// atomic rename and falls back to a plain write, which is needed on
// filesystems that do not support renaming over an existing file.
func WriteAtomic(filename string, contents []byte) error {
	if err1 := atomic.WriteFile(filename, bytes.NewReader(contents)); err1 != nil {
		if err2 := os.WriteFile(filename, contents, 0666); err2 != nil {
			return fmt.Errorf("%s: %s; on non-atomic retry: %w", filename, err1, err2)
		}
	}
	return nil
}

// FileExists reports whether filename exists. Errors other than
// "does not exist" are returned.
func FileExists(filename string) (bool, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
