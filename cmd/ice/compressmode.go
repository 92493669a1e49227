package main

import (
	"strconv"
	"strings"

	"github.com/icza/ice"
)

// parseCompressMode accepts "none", "prs", "kraken", "kraken:<level>", or a
// bare digit 0-9 (shorthand for kraken at that level).
func parseCompressMode(s string) (ice.CompressOptions, error) {
	if s == "" || s == "none" {
		return ice.CompressOptions{Mode: ice.CompressNone}, nil
	}
	if s == "prs" {
		return ice.CompressOptions{Mode: ice.CompressPRS}, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return parseKrakenLevel(n)
	}

	if mode, level, ok := strings.Cut(s, ":"); ok && mode == "kraken" {
		n, err := strconv.Atoi(level)
		if err != nil {
			return ice.CompressOptions{}, errInvalidCompressMode(s)
		}
		return parseKrakenLevel(n)
	}
	if s == "kraken" {
		return ice.CompressOptions{Mode: ice.CompressKraken}, nil
	}

	return ice.CompressOptions{}, errInvalidCompressMode(s)
}

func parseKrakenLevel(n int) (ice.CompressOptions, error) {
	if n < 0 || n > 9 {
		return ice.CompressOptions{}, errInvalidCompressMode(strconv.Itoa(n))
	}
	return ice.CompressOptions{Mode: ice.CompressKraken, Level: uint8(n)}, nil
}

type invalidCompressModeError struct {
	mode string
}

func (e *invalidCompressModeError) Error() string {
	return "invalid compression mode: " + e.mode
}

func errInvalidCompressMode(mode string) error {
	return &invalidCompressModeError{mode: mode}
}
