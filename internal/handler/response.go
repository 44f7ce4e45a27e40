package handler

import (
	"errors"
	"net/http"

	"user_location_dashboard/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData 统一响应结构体
type ResponseData struct {
	Code int `json:"code"`           // 业务响应状态码
	Msg  any `json:"msg"`            // 提示信息
	Data any `json:"data,omitempty"` // 数据
}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, ResponseData{
		Code: errorx.CodeSuccess,
		Msg:  "success",
		Data: data,
	})
}

// HandleError 通用错误处理方法
// 业务错误直接返回携带的错误码和消息，其他错误记录日志并返回服务繁忙
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(http.StatusOK, ResponseData{
			Code: codeErr.Code,
			Msg:  codeErr.Msg,
		})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusOK, ResponseData{
		Code: errorx.ErrServerBusy.Code,
		Msg:  errorx.ErrServerBusy.Msg,
	})
}

// HandleParamError 处理参数绑定错误（带 validator 翻译支持）
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && Trans != nil {
		c.JSON(http.StatusOK, ResponseData{
			Code: errorx.ErrInvalidParam.Code,
			Msg:  RemoveTopStruct(validationErrs.Translate(Trans)),
		})
		return
	}

	zap.L().Warn("param bind error", zap.Error(err))
	c.JSON(http.StatusOK, ResponseData{
		Code: errorx.ErrInvalidParam.Code,
		Msg:  errorx.ErrInvalidParam.Msg,
	})
}
