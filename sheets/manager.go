package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/matryer/try"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/studysoc/discord-bot/prometheus"
	"github.com/studysoc/discord-bot/schedule"
)

// DefaultTTL is how long a fetched dataset is served from cache.
const DefaultTTL = 5 * time.Minute

const (
	scheduleKey = "schedule"
	bookersKey  = "bookers"

	fetchRetries = 3
)

// Manager serves the schedule and bookers datasets from a TTL cache, going
// to the remote source only when the cached copy has expired. The two
// datasets age independently. A failed fetch leaves the cache alone and
// surfaces the error to the caller; expired data is never served as a
// fallback. Concurrent callers racing an expired entry share a single
// in-flight fetch per dataset.
type Manager struct {
	source  Source
	cached  *cache.Cache
	group   singleflight.Group
	retries int
}

// NewManager wraps source with a cache holding entries for ttl.
func NewManager(source Source, ttl time.Duration) *Manager {
	return &Manager{
		source:  source,
		cached:  cache.New(ttl, 2*ttl),
		retries: fetchRetries,
	}
}

// Schedule returns the current schedule, from cache while fresh.
func (m *Manager) Schedule(ctx context.Context) (schedule.Schedule, error) {
	if cachedSchedule, found := m.cached.Get(scheduleKey); found {
		return cachedSchedule.(schedule.Schedule), nil
	}
	fetched, err, _ := m.group.Do(scheduleKey, func() (interface{}, error) {
		grid, err := m.fetch(ctx, scheduleKey, m.source.ScheduleGrid)
		if err != nil {
			return nil, err
		}
		sched := ParseSchedule(grid)
		// An empty parse means the worksheet has no time rows yet; not
		// worth pinning in the cache for a full TTL.
		if len(sched) > 0 {
			m.cached.Set(scheduleKey, sched, cache.DefaultExpiration)
		}
		return sched, nil
	})
	if err != nil {
		return nil, err
	}
	return fetched.(schedule.Schedule), nil
}

// Bookers returns the booking roster, from cache while fresh.
func (m *Manager) Bookers(ctx context.Context) (schedule.Bookers, error) {
	if cachedBookers, found := m.cached.Get(bookersKey); found {
		return cachedBookers.(schedule.Bookers), nil
	}
	fetched, err, _ := m.group.Do(bookersKey, func() (interface{}, error) {
		grid, err := m.fetch(ctx, bookersKey, m.source.BookersGrid)
		if err != nil {
			return nil, err
		}
		bookers := ParseBookers(grid)
		if len(bookers) > 0 {
			m.cached.Set(bookersKey, bookers, cache.DefaultExpiration)
		}
		return bookers, nil
	})
	if err != nil {
		return nil, err
	}
	return fetched.(schedule.Bookers), nil
}

// fetch pulls a grid from the remote source, retrying with an increasing
// pause the way the site checker backs off.
func (m *Manager) fetch(ctx context.Context, dataset string, get func(context.Context) ([][]string, error)) ([][]string, error) {
	var grid [][]string
	err := try.Do(func(attempt int) (bool, error) {
		var err error
		grid, err = get(ctx)
		if err != nil && attempt < m.retries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
		return attempt < m.retries, err
	})
	prometheus.SheetFetch(dataset, err)
	if err != nil {
		return nil, fmt.Errorf("fetching %s grid: %w", dataset, err)
	}
	return grid, nil
}
