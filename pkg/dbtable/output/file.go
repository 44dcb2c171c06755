package output

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteFile replaces path with data. Readers never observe a partially
// written file.
func WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
