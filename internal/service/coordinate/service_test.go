package coordinate

import (
	"context"
	"errors"
	"testing"
	"time"

	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/dao/memory"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newService() *coordinateService {
	return NewCoordinateService(memory.NewSeeded(fixedNow), func() time.Time { return fixedNow })
}

func TestGetCoordinate_Fallback(t *testing.T) {
	raw, err := newService().GetCoordinate(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", raw.UserId)
	assert.EqualValues(t, "男", raw.Gender)
	ms, ok := raw.LastUpdate.Millis()
	require.True(t, ok)
	assert.Equal(t, fixedNow.UnixMilli(), ms)
}

func TestListUsers_DefaultsAndAdapts(t *testing.T) {
	page, err := newService().ListUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Users, 3)
	assert.Equal(t, model.GenderFemale, page.Users[1].Gender)
	assert.Equal(t, "2024-05-01T08:00:00.000Z", page.Users[1].LastUpdateTime)
}

func TestListUsers_PastLastPage(t *testing.T) {
	page, err := newService().ListUsers(context.Background(), 5, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Users)
	assert.Equal(t, 3, page.Total)
}

func TestGetHistory_NotFound(t *testing.T) {
	_, err := newService().GetHistory(context.Background(), "unknown-id")
	assert.True(t, errorx.IsNotFound(err))
}

// brokenRepo FindUser 总是返回数据库错误
type brokenRepo struct{ dao.CoordinateRepository }

func (brokenRepo) FindUser(ctx context.Context, userId string) (*model.UserCoordinate, error) {
	return nil, errorx.Wrap(errors.New("dial tcp: refused"), errorx.CodeDBError, "查询用户坐标")
}

func TestGetCoordinate_RepositoryFailureIsServerBusy(t *testing.T) {
	svc := NewCoordinateService(brokenRepo{CoordinateRepository: memory.NewSeeded(fixedNow)}, nil)
	_, err := svc.GetCoordinate(context.Background(), "user001")
	assert.Equal(t, errorx.CodeServerBusy, errorx.GetCode(err))
}
