package logrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estocando/internal/domain"
	"estocando/internal/pkg/logger"
	"estocando/internal/repository/logrepo"
	"estocando/internal/repository/repotest"
)

func TestLogRepository_SaveAndFindRecent(t *testing.T) {
	repo := logrepo.NewLogRepository(repotest.Open(t), 5*time.Second, logger.NewNop())
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i, path := range []string{"/auth/login", "/items", "/items/1/adjust"} {
		_, err := repo.Save(ctx, domain.RequestLog{
			Method:     "POST",
			Path:       path,
			Status:     201,
			DurationMs: int64(i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	logs, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "/items/1/adjust", logs[0].Path)
	assert.Equal(t, "/items", logs[1].Path)
	assert.Empty(t, logs[0].IP)
}
