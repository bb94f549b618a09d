package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mvaldes-dev/portfolio-api/internal/models"
)

func TestStatusRepositoryCreateAndList(t *testing.T) {
	db := setupTestDB(t, &models.StatusCheck{})
	repo := NewStatusRepository(db)

	now := time.Now().UTC()
	older := models.StatusCheck{ID: uuid.NewString(), ClientName: "uptime-bot", Timestamp: now.Add(-time.Minute)}
	newer := models.StatusCheck{ID: uuid.NewString(), ClientName: "uptime-bot", Timestamp: now}

	require.NoError(t, repo.Create(context.Background(), &older))
	require.NoError(t, repo.Create(context.Background(), &newer))

	checks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, checks, 2)
	require.Equal(t, newer.ID, checks[0].ID)
	require.Equal(t, older.ID, checks[1].ID)
}

func TestStatusRepositoryListEmpty(t *testing.T) {
	db := setupTestDB(t, &models.StatusCheck{})
	repo := NewStatusRepository(db)

	checks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, checks)
	require.Empty(t, checks)
}
