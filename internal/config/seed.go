package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeed reads a board seed in the hexadecimal form FormatSeed emits.
func ParseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

func FormatSeed(seed uint64) string {
	return fmt.Sprintf("%016x", seed)
}
