package common

import (
	"fmt"
	"strconv"
)

// FormatID renders a snowflake the way the Discord API expects it
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID converts a Discord snowflake string to int64
func ParseID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", id, err)
	}
	return parsed, nil
}
