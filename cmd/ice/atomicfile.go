package main

import (
	"bytes"

	"github.com/natefinch/atomic"
)

func atomicWriteFile(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}
