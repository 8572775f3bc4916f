package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk-backend/internal/models"
)

func TestAuditRepo_LogAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditRepo(db)
	repo.now = fixedClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	uid := int64(1)
	_, err := repo.Log(ctx, &uid, "admin", models.ActionLogin, "10.0.0.1")
	require.NoError(t, err)
	_, err = repo.Log(ctx, nil, "ghost", models.ActionLoginFailed, "")
	require.NoError(t, err)
	_, err = repo.Log(ctx, &uid, "admin", models.ActionLogout, "10.0.0.1")
	require.NoError(t, err)

	all, err := repo.List(ctx, models.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, models.ActionLogout, all[0].Action, "newest first")
	assert.Equal(t, time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC), all[0].Timestamp)

	failed, err := repo.List(ctx, models.AuditFilter{Action: models.ActionLoginFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Nil(t, failed[0].UserID)
	assert.Equal(t, "ghost", failed[0].Username)
	assert.Empty(t, failed[0].IPAddress)

	page, err := repo.List(ctx, models.AuditFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, models.ActionLoginFailed, page[0].Action)
	require.NotNil(t, all[0].UserID)
	assert.Equal(t, uid, *all[0].UserID)
}
