//go:build integration
// +build integration

package mysql

import (
	"context"
	"testing"

	"user_location_dashboard/internal/config"
	"user_location_dashboard/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 需要本地 MySQL，连接参数取自 configs/config.toml
func TestCoordinateRepository_AgainstMySQL(t *testing.T) {
	repo, err := Init(config.GetConfig().MysqlConfig)
	require.NoError(t, err)
	ctx := context.Background()

	u, err := repo.FindUser(ctx, "user001")
	require.NoError(t, err)
	assert.Equal(t, "北京市朝阳区", u.Region)

	users, total, err := repo.ListUsers(ctx, 0, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(3))
	assert.Len(t, users, 2)

	traces, err := repo.FindTraces(ctx, "user001")
	require.NoError(t, err)
	require.NotEmpty(t, traces)
	for i := 1; i < len(traces); i++ {
		assert.False(t, traces[i].RecordedAt.After(traces[i-1].RecordedAt))
	}

	_, err = repo.FindTraces(ctx, "unknown-id")
	assert.True(t, errorx.IsNotFound(err))
}
