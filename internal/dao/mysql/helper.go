package mysql

import (
	"errors"

	"user_location_dashboard/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError 包装数据库错误
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 功能同 wrapDBError，支持格式化消息
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}
