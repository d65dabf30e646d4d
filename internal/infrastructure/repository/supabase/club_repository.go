package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsopublico/pulso-api/external/postgrest"
	"github.com/pulsopublico/pulso-api/internal/domain/club"
)

const clubsResource = "clubs"

type ClubRepository struct {
	client *postgrest.Client
}

func NewClubRepository(client *postgrest.Client) *ClubRepository {
	return &ClubRepository{client: client}
}

// FindByName matches either the official or the short club name, case
// insensitively and anywhere in the string.
func (r *ClubRepository) FindByName(ctx context.Context, name string) (club.Club, bool, error) {
	pattern := "*" + sanitizeFilterValue(name) + "*"
	query := postgrest.NewQuery().
		Select("id,name_official,name_short").
		OrGroup(
			"name_official.ilike."+pattern,
			"name_short.ilike."+pattern,
		).
		Limit(1)

	rows, err := r.client.GetRows(ctx, clubsResource, query)
	if err != nil {
		return club.Club{}, false, fmt.Errorf("find club by name: %w", err)
	}
	if len(rows) == 0 {
		return club.Club{}, false, nil
	}

	row := rows[0]
	resolved := club.Club{
		ID:           getString(row, "id"),
		NameOfficial: strings.TrimSpace(getString(row, "name_official")),
		NameShort:    strings.TrimSpace(getString(row, "name_short")),
	}
	if resolved.ID == "" {
		return club.Club{}, false, nil
	}
	return resolved, true, nil
}
