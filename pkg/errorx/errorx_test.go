package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeError_WrapKeepsCause(t *testing.T) {
	base := errors.New("connection refused")
	err := Wrapf(base, CodeTransport, "请求 %s 失败", "/users/coordinates/user001")

	assert.Equal(t, "请求 /users/coordinates/user001 失败: connection refused", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, CodeTransport, GetCode(err))
}

func TestGetCode_ThroughFmtWrapping(t *testing.T) {
	inner := New(CodeInvalidTimestamp, "时间戳非法")
	outer := fmt.Errorf("adapt: %w", inner)

	require.Equal(t, CodeInvalidTimestamp, GetCode(outer))
	require.Equal(t, CodeServerBusy, GetCode(errors.New("plain")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(CodeNotFound, "位置历史不存在")))
	assert.True(t, IsNotFound(errors.New("record not found")))
	assert.False(t, IsNotFound(New(CodeDBError, "db")))
	assert.False(t, IsNotFound(nil))
}
