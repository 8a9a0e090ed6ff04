// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package abstract rebuilds plain-text abstracts from the OpenAlex
// inverted-index encoding, which maps each distinct word to the list of
// zero-based positions where it occurs.
package abstract

import (
	"sort"
	"strings"
)

// Reconstruct converts an inverted index back to the original-order,
// space-joined text. It returns the text and the number of anomalies seen
// in the index: position collisions (two words claiming one position) and
// negative positions.
//
// A nil or empty index yields an empty string. Collisions resolve
// last-write-wins with words visited in lexicographic order, so a
// malformed index still reconstructs deterministically. Callers should
// surface a non-zero anomaly count as a data-quality warning; it is never
// an error.
func Reconstruct(index map[string][]int) (string, int) {
	if len(index) == 0 {
		return "", 0
	}

	words := make([]string, 0, len(index))
	for w := range index {
		words = append(words, w)
	}
	sort.Strings(words)

	byPos := make(map[int]string)
	anomalies := 0
	for _, w := range words {
		for _, pos := range index[w] {
			if pos < 0 {
				anomalies++
				continue
			}
			if _, taken := byPos[pos]; taken {
				anomalies++
			}
			byPos[pos] = w
		}
	}

	positions := make([]int, 0, len(byPos))
	for pos := range byPos {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	ordered := make([]string, len(positions))
	for i, pos := range positions {
		ordered[i] = byPos[pos]
	}
	return strings.Join(ordered, " "), anomalies
}
