package sheets

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	scheduleFetches int32
	bookersFetches  int32
	scheduleErr     error
	delay           time.Duration

	scheduleGrid [][]string
	bookersGrid  [][]string
}

func (s *stubSource) ScheduleGrid(ctx context.Context) ([][]string, error) {
	atomic.AddInt32(&s.scheduleFetches, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.scheduleErr != nil {
		return nil, s.scheduleErr
	}
	return s.scheduleGrid, nil
}

func (s *stubSource) BookersGrid(ctx context.Context) ([][]string, error) {
	atomic.AddInt32(&s.bookersFetches, 1)
	return s.bookersGrid, nil
}

func testScheduleGrid() [][]string {
	return scheduleGrid(
		[]string{"9/15/2025", "9/16/2025", "9/17/2025", "9/18/2025", "9/19/2025", "9/20/2025", "9/21/2025"},
		[][]string{
			{"", "8:00 am", "BOOKED"},
			{"", "8:30 am", "", "BOOKED"},
		},
	)
}

func TestManagerServesFromCacheWithinTTL(t *testing.T) {
	source := &stubSource{scheduleGrid: testScheduleGrid()}
	manager := NewManager(source, time.Minute)

	first, err := manager.Schedule(context.Background())
	require.NoError(t, err)
	second, err := manager.Schedule(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.scheduleFetches))
	assert.Equal(t, first, second)
}

func TestManagerRefetchesAfterTTL(t *testing.T) {
	source := &stubSource{scheduleGrid: testScheduleGrid()}
	manager := NewManager(source, 20*time.Millisecond)

	_, err := manager.Schedule(context.Background())
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	_, err = manager.Schedule(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&source.scheduleFetches))
}

func TestManagerFetchErrorPropagates(t *testing.T) {
	source := &stubSource{scheduleErr: errors.New("rate limited")}
	manager := NewManager(source, time.Minute)
	manager.retries = 1

	_, err := manager.Schedule(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")

	// A later successful fetch recovers.
	source.scheduleErr = nil
	source.scheduleGrid = testScheduleGrid()
	sched, err := manager.Schedule(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sched)
}

func TestManagerRetriesFailedFetch(t *testing.T) {
	source := &stubSource{scheduleErr: errors.New("unreachable")}
	manager := NewManager(source, time.Minute)
	manager.retries = 2

	_, err := manager.Schedule(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&source.scheduleFetches))
}

func TestManagerDoesNotCacheEmptySchedule(t *testing.T) {
	source := &stubSource{scheduleGrid: nil}
	manager := NewManager(source, time.Minute)

	sched, err := manager.Schedule(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sched)

	_, err = manager.Schedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&source.scheduleFetches))
}

func TestManagerCoalescesConcurrentFetches(t *testing.T) {
	source := &stubSource{scheduleGrid: testScheduleGrid(), delay: 50 * time.Millisecond}
	manager := NewManager(source, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.Schedule(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.scheduleFetches))
}

func TestManagerDatasetsAgeIndependently(t *testing.T) {
	source := &stubSource{
		scheduleGrid: testScheduleGrid(),
		bookersGrid: [][]string{
			{"Time", "Booker"},
			{"8:00 am", "ada"},
		},
	}
	manager := NewManager(source, time.Minute)

	_, err := manager.Bookers(context.Background())
	require.NoError(t, err)
	_, err = manager.Schedule(context.Background())
	require.NoError(t, err)
	_, err = manager.Bookers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.scheduleFetches))
	assert.Equal(t, int32(1), atomic.LoadInt32(&source.bookersFetches))
}
