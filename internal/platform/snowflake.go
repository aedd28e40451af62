package platform

import (
	"strconv"
	"time"
)

// Platform epoch: 2015-01-01T00:00:00Z in Unix milliseconds. Snowflake IDs
// carry milliseconds since this epoch in their top 42 bits.
const snowflakeEpochMS = 1420070400000

// SnowflakeTime returns the creation instant embedded in a snowflake ID.
// Malformed IDs yield the zero time.
func SnowflakeTime(id string) time.Time {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return time.Time{}
	}
	ms := int64(n>>22) + snowflakeEpochMS
	return time.UnixMilli(ms).UTC()
}

// IsSnowflake reports whether s looks like a platform snowflake ID.
func IsSnowflake(s string) bool {
	if len(s) < 15 || len(s) > 20 {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
