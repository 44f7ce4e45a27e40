// Package mock 本地开发用的位置服务桩
// 直接返回线上原始形态（非 {code,msg,data} 信封），供 client 包消费
package mock

import (
	"errors"
	"net/http"

	"user_location_dashboard/internal/dto/request"
	"user_location_dashboard/internal/handler"
	"user_location_dashboard/internal/service"
	"user_location_dashboard/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Handler 坐标接口处理器
type Handler struct {
	svc service.CoordinateService
}

// NewHandler 创建处理器
func NewHandler(svc service.CoordinateService) *Handler {
	return &Handler{svc: svc}
}

// GetCoordinates 获取单个用户的原始坐标
// GET /users/coordinates/:userId
func (h *Handler) GetCoordinates(c *gin.Context) {
	var req request.UserIdRequest
	if err := c.ShouldBindUri(&req); err != nil {
		badRequest(c, err)
		return
	}

	raw, err := h.svc.GetCoordinate(c.Request.Context(), req.UserId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

// ListCoordinates 分页获取用户列表，返回归一化后的 { users, total }
// GET /users/coordinates?page=&pageSize=
func (h *Handler) ListCoordinates(c *gin.Context) {
	var req request.GetUsersPageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.svc.ListUsers(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetHistory 获取用户位置历史，没有记录时返回 404
// GET /users/coordinates/history/:userId
func (h *Handler) GetHistory(c *gin.Context) {
	var req request.UserIdRequest
	if err := c.ShouldBindUri(&req); err != nil {
		badRequest(c, err)
		return
	}

	history, err := h.svc.GetHistory(c.Request.Context(), req.UserId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// badRequest 参数校验失败，翻译器可用时返回逐字段的中文提示
func badRequest(c *gin.Context, err error) {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && handler.Trans != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": handler.RemoveTopStruct(errs.Translate(handler.Trans))})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": errorx.ErrInvalidParam.Msg})
}

// respondError NotFound -> 404，其余 -> 500
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errorx.IsNotFound(err) {
		status = http.StatusNotFound
	}
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(status, gin.H{"message": codeErr.Msg})
		return
	}
	c.JSON(status, gin.H{"message": errorx.ErrServerBusy.Msg})
}
