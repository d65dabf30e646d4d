package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsopublico/pulso-api/external/postgrest"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

// dateColumns are tried in order when filtering or sorting by day; deployed
// schemas have named this column differently across migrations.
var dateColumns = []string{
	"aggregation_date",
	"bucket_date",
	"ranking_date",
	"metric_date",
	"day",
	"date",
}

// RankingRepository reads daily ranking rows through a chain of candidate
// resources, newest schema first.
type RankingRepository struct {
	client    *postgrest.Client
	resources []string
}

func NewRankingRepository(client *postgrest.Client, resources []string) *RankingRepository {
	kept := make([]string, 0, len(resources))
	for _, resource := range resources {
		resource = strings.TrimSpace(resource)
		if resource != "" {
			kept = append(kept, resource)
		}
	}
	if len(kept) == 0 {
		kept = []string{"daily_ranking_with_names", "daily_ranking", "daily_rankings"}
	}
	return &RankingRepository{client: client, resources: kept}
}

func (r *RankingRepository) DayRecord(ctx context.Context, clubID, date string) (ranking.DayRecord, bool, error) {
	rows, _, err := r.rowsByDate(ctx, date, func(q *postgrest.Query) {
		q.Select("*").Eq("club_id", sanitizeFilterValue(clubID)).Limit(1)
	})
	if err != nil {
		return ranking.DayRecord{}, false, err
	}
	if len(rows) == 0 {
		return ranking.DayRecord{}, false, nil
	}
	return toDayRecord(rows[0], clubID), true, nil
}

func (r *RankingRepository) RecentDayRecords(ctx context.Context, clubID string, limit int) ([]ranking.DayRecord, error) {
	if limit <= 0 {
		limit = 1
	}

	var lastErr error
	for _, column := range dateColumns {
		rows, _, err := r.client.FirstNonEmpty(ctx, r.resources, func(string) *postgrest.Query {
			return postgrest.NewQuery().
				Select("*").
				Eq("club_id", sanitizeFilterValue(clubID)).
				Order(column + ".desc").
				Limit(limit)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		if len(rows) == 0 {
			continue
		}
		out := make([]ranking.DayRecord, 0, len(rows))
		for _, row := range rows {
			out = append(out, toDayRecord(row, clubID))
		}
		return out, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("fetch recent records: %w", lastErr)
	}
	return nil, nil
}

func (r *RankingRepository) LatestDate(ctx context.Context) (string, bool, error) {
	var lastErr error
	for _, column := range dateColumns {
		rows, _, err := r.client.FirstNonEmpty(ctx, r.resources, func(string) *postgrest.Query {
			return postgrest.NewQuery().
				Select(column).
				Order(column + ".desc").
				Limit(1)
		})
		if err != nil {
			if ctx.Err() != nil {
				return "", false, ctx.Err()
			}
			lastErr = err
			continue
		}
		if len(rows) == 0 {
			continue
		}
		if date := ranking.Row(rows[0]).Date(); date != "" {
			return date, true, nil
		}
	}
	if lastErr != nil {
		return "", false, fmt.Errorf("resolve latest date: %w", lastErr)
	}
	return "", false, nil
}

func (r *RankingRepository) RowsForDate(ctx context.Context, date string, q ranking.RowQuery) ([]ranking.Row, string, error) {
	return r.rowsByDate(ctx, date, func(query *postgrest.Query) {
		applyRowQuery(query, q)
	})
}

func (r *RankingRepository) Rows(ctx context.Context, q ranking.RowQuery) ([]ranking.Row, string, error) {
	rows, resource, err := r.client.FirstNonEmpty(ctx, r.resources, func(string) *postgrest.Query {
		query := postgrest.NewQuery()
		applyRowQuery(query, q)
		return query
	})
	if err != nil {
		return nil, "", fmt.Errorf("fetch ranking rows: %w", err)
	}
	return toRankingRows(rows), resource, nil
}

// rowsByDate filters by each candidate date column in turn. An unknown
// column makes the backend reject the whole read, so a failing column just
// moves the chain along.
func (r *RankingRepository) rowsByDate(ctx context.Context, date string, decorate func(*postgrest.Query)) ([]ranking.Row, string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, "", fmt.Errorf("date is required")
	}

	var firstEmptyResource string
	var lastErr error
	for _, column := range dateColumns {
		rows, resource, err := r.client.FirstNonEmpty(ctx, r.resources, func(string) *postgrest.Query {
			query := postgrest.NewQuery()
			decorate(query)
			return query.Eq(column, date)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, "", ctx.Err()
			}
			lastErr = err
			continue
		}
		if len(rows) == 0 {
			if firstEmptyResource == "" {
				firstEmptyResource = resource
			}
			continue
		}
		return toRankingRows(rows), resource, nil
	}

	if firstEmptyResource != "" {
		return nil, firstEmptyResource, nil
	}
	if lastErr != nil {
		// Every known day column was rejected, so this schema names its day
		// column something else entirely. Serve the resource's own ordering
		// rather than failing the read.
		rows, resource, err := r.client.FirstNonEmpty(ctx, r.resources, func(string) *postgrest.Query {
			query := postgrest.NewQuery()
			decorate(query)
			return query
		})
		if err != nil {
			return nil, "", fmt.Errorf("fetch rows for %s: %w", date, lastErr)
		}
		return toRankingRows(rows), resource, nil
	}
	return nil, "", nil
}

func applyRowQuery(query *postgrest.Query, q ranking.RowQuery) {
	selectExpr := strings.TrimSpace(q.Select)
	if selectExpr == "" {
		selectExpr = "*"
	}
	order := strings.TrimSpace(q.Order)
	if order == "" {
		order = "score.desc"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	query.Select(selectExpr).Order(order).Limit(limit)
}

func toRankingRows(rows []map[string]any) []ranking.Row {
	if rows == nil {
		return nil
	}
	out := make([]ranking.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, ranking.Row(row))
	}
	return out
}

func toDayRecord(raw map[string]any, clubID string) ranking.DayRecord {
	row := ranking.Row(raw)
	record := ranking.DayRecord{
		ClubID:   getString(raw, "club_id"),
		ClubName: row.DisplayName(),
		Date:     row.Date(),
	}
	if record.ClubID == "" {
		record.ClubID = clubID
	}
	if score, ok := row.Score(); ok {
		record.Score = &score
	}
	if volume, ok := row.Volume(); ok {
		record.VolumeTotal = &volume
	}
	if sentiment, ok := row.Sentiment(); ok {
		record.SentimentScore = &sentiment
	}
	if rank, ok := row.Rank(); ok {
		record.RankPosition = &rank
	}
	return record
}
