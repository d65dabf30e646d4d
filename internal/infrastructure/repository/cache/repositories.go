package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
	"github.com/pulsopublico/pulso-api/internal/domain/metrics"
	basecache "github.com/pulsopublico/pulso-api/internal/platform/cache"
)

type cachedClubByName struct {
	value  club.Club
	exists bool
}

// ClubRepository memoizes name lookups. Club rows change rarely while every
// club-scoped route starts with the same resolution query.
type ClubRepository struct {
	next  club.Repository
	cache *basecache.Store
}

func NewClubRepository(next club.Repository, cache *basecache.Store) *ClubRepository {
	return &ClubRepository{next: next, cache: cache}
}

func (r *ClubRepository) FindByName(ctx context.Context, name string) (club.Club, bool, error) {
	key := "club:name:" + club.NormalizeKey(name)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedClubByName{value: item, exists: exists}, nil
	})
	if err != nil {
		return club.Club{}, false, err
	}

	cached, _ := v.(cachedClubByName)
	return cached.value, cached.exists, nil
}

// SourceRepository memoizes source identity lookups keyed by the sorted ID
// set.
type SourceRepository struct {
	next  metrics.SourceRepository
	cache *basecache.Store
}

func NewSourceRepository(next metrics.SourceRepository, cache *basecache.Store) *SourceRepository {
	return &SourceRepository{next: next, cache: cache}
}

func (r *SourceRepository) SourcesByID(ctx context.Context, ids []string) ([]metrics.Source, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	key := "sources:ids:" + strings.Join(sorted, ",")

	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.SourcesByID(ctx, ids)
		if err != nil {
			return nil, err
		}
		return append([]metrics.Source(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]metrics.Source)
	return append([]metrics.Source(nil), items...), nil
}
