package auth

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk-backend/internal/database"
	"crmdesk-backend/internal/logging"
)

type fakeDeleter struct {
	calls atomic.Int32
	err   error
}

func (f *fakeDeleter) DeleteExpired(context.Context) (int64, error) {
	f.calls.Add(1)
	return 2, f.err
}

func TestSweeper_SweepOnceAgainstStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := database.NewUserRepo(db)
	u, _, err := users.CreateFirstAdmin(ctx, "admin", "digest")
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	_, err = database.NewSessionRepo(db).WithClock(func() time.Time { return past }).Create(ctx, u.ID, time.Hour)
	require.NoError(t, err)
	_, err = database.NewSessionRepo(db).Create(ctx, u.ID, time.Hour)
	require.NoError(t, err)

	sw := NewSweeper(database.NewSessionRepo(db), time.Minute, logging.Discard())
	n, err := sw.SweepOnce(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, 1, countRows(t, db, "sessions"))
}

func TestSweeper_SweepOnceError(t *testing.T) {
	fake := &fakeDeleter{err: errors.New("boom")}
	sw := NewSweeper(fake, time.Minute, logging.Discard())

	n, err := sw.SweepOnce(context.Background())
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestSweeper_RunTicksUntilCancelled(t *testing.T) {
	fake := &fakeDeleter{}
	sw := NewSweeper(fake, 5*time.Millisecond, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sw.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return fake.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestSweeper_RunDisabled(t *testing.T) {
	fake := &fakeDeleter{}
	sw := NewSweeper(fake, 0, logging.Discard())
	sw.Run(context.Background())
	assert.Zero(t, fake.calls.Load())
}
