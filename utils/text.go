package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDList parses a comma separated list of chat or user IDs.
//
// Blank entries are skipped, so "1, ,2," yields [1 2].
//
// Args:
//   - s: The list to parse.
//
// Returns:
//   - []int64: The parsed IDs.
//   - error: An error naming the first entry that is not an integer.
func ParseIDList(s string) ([]int64, error) {
	var ids []int64

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", field, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
