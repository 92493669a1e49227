package ice

import (
	"bytes"

	"github.com/natefinch/atomic"
)

// atomicWriteFile writes data to path via a temp-file-plus-rename so a
// crash or interrupted write never leaves a half-written archive at the
// destination.
func atomicWriteFile(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}
