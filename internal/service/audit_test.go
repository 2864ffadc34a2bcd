package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"marketplace-api/internal/database"
	"marketplace-api/internal/model"
	"marketplace-api/internal/worker"

	"github.com/stretchr/testify/require"
)

func TestAuditorSync(t *testing.T) {
	setup(t)
	var got *model.ActivityLog
	createActivityLog = func(_ context.Context, _ database.DB, l *model.ActivityLog) error {
		got = l
		return nil
	}

	a := NewAuditor(&database.FakeDB{}, nil)
	require.False(t, a.Async())
	require.NoError(t, a.Append(context.Background(), model.ActionCreate, "Added new food item Pho", 3, model.ItemFood))
	require.Equal(t, model.ActionCreate, got.Action)
	require.Equal(t, "Added new food item Pho", got.Description)
	require.Equal(t, 3, *got.ItemID)
	require.Equal(t, model.ItemFood, *got.ItemType)

	createActivityLog = func(context.Context, database.DB, *model.ActivityLog) error { return errors.New("down") }
	require.Error(t, a.Append(context.Background(), model.ActionDelete, "x", 1, model.ItemRental))
}

func TestAuditorAsyncSwallowsErrors(t *testing.T) {
	setup(t)
	var (
		wg          sync.WaitGroup
		hadDeadline bool
		ctxErr      error
	)
	wg.Add(1)
	createActivityLog = func(ctx context.Context, _ database.DB, _ *model.ActivityLog) error {
		defer wg.Done()
		_, hadDeadline = ctx.Deadline()
		ctxErr = ctx.Err()
		return errors.New("down")
	}

	pool := worker.NewPool(1, 4)
	a := NewAuditor(&database.FakeDB{}, pool)
	require.True(t, a.Async())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, a.Append(ctx, model.ActionUpdate, "x", 1, model.ItemFood))
	cancel()
	wg.Wait()
	pool.Stop()

	require.True(t, hadDeadline)
	require.NoError(t, ctxErr, "request cancellation must not reach the background write")
}

func TestAuditorRecent(t *testing.T) {
	setup(t)
	now := time.Now()
	listRecentActivityLogs = func(_ context.Context, _ database.DB, limit int) ([]model.ActivityLog, error) {
		require.Equal(t, 4, limit)
		return []model.ActivityLog{{ID: 2, CreatedAt: now}, {ID: 1, CreatedAt: now.Add(-time.Minute)}}, nil
	}
	a := NewAuditor(&database.FakeDB{}, nil)
	logs, err := a.Recent(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, 2, logs[0].ID)

	listRecentActivityLogs = func(context.Context, database.DB, int) ([]model.ActivityLog, error) {
		return nil, errors.New("down")
	}
	_, err = a.Recent(context.Background(), 4)
	require.Error(t, err)
}
