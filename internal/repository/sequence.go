package repository

import (
	"strconv"
	"strings"
)

// MaxSequence returns the highest numeric suffix among numbers that start
// with prefix. Numbers with a non-numeric suffix are ignored.
func MaxSequence(numbers []string, prefix string) int64 {
	var max int64
	for _, number := range numbers {
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		seq, err := strconv.ParseInt(number[len(prefix):], 10, 64)
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max
}
