package ranking

import "context"

// RowQuery carries the pass-through list parameters for ranking fetches.
type RowQuery struct {
	Select string
	Order  string
	Limit  int
}

// Repository reads day records and ranking rows from the hosted data API.
// Implementations resolve the candidate-resource fallback chain internally
// and report the resource that actually served the rows.
type Repository interface {
	// DayRecord returns the record for (clubID, date); an empty date selects
	// the club's most recent record.
	DayRecord(ctx context.Context, clubID, date string) (DayRecord, bool, error)

	// RecentDayRecords returns up to limit records for the club, most recent
	// first.
	RecentDayRecords(ctx context.Context, clubID string, limit int) ([]DayRecord, error)

	// LatestDate reports the most recent aggregation date with any rows.
	LatestDate(ctx context.Context) (string, bool, error)

	// RowsForDate fetches ranking rows filtered to one day, trying the known
	// date-column name variants per resource.
	RowsForDate(ctx context.Context, date string, q RowQuery) ([]Row, string, error)

	// Rows fetches ranking rows without a date filter.
	Rows(ctx context.Context, q RowQuery) ([]Row, string, error)
}
