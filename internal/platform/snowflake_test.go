package platform

import (
	"strconv"
	"testing"
	"time"
)

func TestSnowflakeTime_RoundTrip(t *testing.T) {
	t.Parallel()
	created := time.Date(2023, 6, 15, 12, 30, 45, 0, time.UTC)
	id := strconv.FormatUint(uint64(created.UnixMilli()-snowflakeEpochMS)<<22, 10)

	got := SnowflakeTime(id)
	if !got.Equal(created) {
		t.Errorf("expected %v, got %v", created, got)
	}
}

func TestSnowflakeTime_Malformed(t *testing.T) {
	t.Parallel()
	for _, id := range []string{"", "not-a-number", "-5", "0"} {
		if got := SnowflakeTime(id); !got.IsZero() {
			t.Errorf("expected zero time for %q, got %v", id, got)
		}
	}
}

func TestSnowflakeTime_Ordering(t *testing.T) {
	t.Parallel()
	earlier := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	earlierID := strconv.FormatUint(uint64(earlier.UnixMilli()-snowflakeEpochMS)<<22, 10)
	laterID := strconv.FormatUint(uint64(later.UnixMilli()-snowflakeEpochMS)<<22, 10)

	if !SnowflakeTime(laterID).After(SnowflakeTime(earlierID)) {
		t.Error("later ID should decode to a later time")
	}
}

func TestIsSnowflake(t *testing.T) {
	t.Parallel()
	valid := []string{"175928847299117063", "155149557720358912", "123456789012345"}
	for _, s := range valid {
		if !IsSnowflake(s) {
			t.Errorf("%q should be a valid snowflake", s)
		}
	}

	invalid := []string{"", "123", "abc", "17592884729911706a", "123456789012345678901"}
	for _, s := range invalid {
		if IsSnowflake(s) {
			t.Errorf("%q should not be a valid snowflake", s)
		}
	}
}
