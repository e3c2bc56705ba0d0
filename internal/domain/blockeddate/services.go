package blockeddate

import "time"

// Latest returns the effective record for (accommodationID, date): among
// duplicates the one with the most recent timestamp wins, regardless of how
// restrictive it is.
func Latest(records []*Record, accommodationID string, date time.Time) *Record {
	return latestWhere(records, accommodationID, date, func(*Record) bool { return true })
}

// LatestPriced is Latest restricted to records that carry a price override.
func LatestPriced(records []*Record, accommodationID string, date time.Time) *Record {
	return latestWhere(records, accommodationID, date, (*Record).HasPriceOverride)
}

func latestWhere(records []*Record, accommodationID string, date time.Time, keep func(*Record) bool) *Record {
	var latest *Record
	for _, r := range records {
		if !r.Matches(accommodationID, date) || !keep(r) {
			continue
		}
		if latest == nil || r.Timestamp().After(latest.Timestamp()) {
			latest = r
		}
	}
	return latest
}

func ForAccommodation(records []*Record, accommodationID string) []*Record {
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if r.accommodationID == accommodationID {
			out = append(out, r)
		}
	}
	return out
}
