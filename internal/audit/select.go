package audit

import (
	"strconv"
	"time"
)

// Epoch values below this are taken to be seconds and scaled to millis.
const secondsThreshold = 2e10

// SelectNewest returns the record with the latest resolvable timestamp, or
// nil for an empty list. Records without an interpretable timestamp resolve
// to epoch 0 and therefore sort as oldest. The input is not mutated; ties
// keep the earlier element.
func SelectNewest(records []PostRecord) *PostRecord {
	if len(records) == 0 {
		return nil
	}
	best := 0
	bestTS := timestampMillis(records[0])
	for i := 1; i < len(records); i++ {
		if ts := timestampMillis(records[i]); ts > bestTS {
			best, bestTS = i, ts
		}
	}
	rec := records[best]
	return &rec
}

// timestampMillis resolves a record's timestamp to epoch milliseconds.
// Priority: the provider-specific numeric epoch field, then the generic
// timestamp field (numeric, ISO 8601 string, or numeric string). Anything
// unparsable resolves to 0.
func timestampMillis(rec PostRecord) int64 {
	if rec.TakenAt != nil {
		return normalizeEpoch(*rec.TakenAt)
	}
	switch v := rec.Timestamp.(type) {
	case float64:
		return normalizeEpoch(v)
	case int64:
		return normalizeEpoch(float64(v))
	case int:
		return normalizeEpoch(float64(v))
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t.UnixMilli()
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return normalizeEpoch(f)
		}
	}
	return 0
}

func normalizeEpoch(v float64) int64 {
	if v <= 0 {
		return 0
	}
	if v < secondsThreshold {
		return int64(v * 1000)
	}
	return int64(v)
}
