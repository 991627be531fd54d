package utils

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Suggest returns the candidate closest to input by edit distance.
//
// Candidates farther than maxDistance are ignored; ties keep the first candidate.
// The comparison is case-insensitive.
//
// Args:
//   - input: The mistyped word.
//   - candidates: The known words.
//   - maxDistance: The largest accepted edit distance.
//
// Returns:
//   - string: The best candidate.
//   - bool: False when no candidate is close enough.
func Suggest(input string, candidates []string, maxDistance int) (string, bool) {
	options := levenshtein.Options{InsCost: 1, DelCost: 1, SubCost: 1, Matches: levenshtein.IdenticalRunes}
	source := []rune(strings.ToLower(input))
	best, bestDistance := "", maxDistance+1

	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(source, []rune(strings.ToLower(candidate)), options)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	return best, best != ""
}
