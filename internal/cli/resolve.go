package cli

import (
	"fmt"
	"strings"
	"time"
)

// resolveID matches input against a list of candidate IDs: exact match
// first, then unique prefix.
func resolveID(input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("ID is required")
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDateFlag accepts YYYY-MM-DD or a full RFC3339 timestamp.
func parseDateFlag(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", s)
	}
	return t, nil
}
