// Package handler 提供 HTTP 请求处理器
// 本文件把 Store 的动作暴露给看板前端，每个动作执行完毕后返回最新快照
package handler

import (
	"context"

	"user_location_dashboard/internal/dto/request"
	"user_location_dashboard/internal/store"

	"github.com/gin-gonic/gin"
)

// DashboardStore 看板处理器依赖的 Store 接口
type DashboardStore interface {
	Snapshot() store.State
	FetchUserInfo(ctx context.Context, userId string)
	FetchLocationHistory(ctx context.Context, userId string)
	FetchAllUsers(ctx context.Context)
	FetchUsersPage(ctx context.Context, page, pageSize int)
	ClearUserData()
}

// DashboardHandler 看板请求处理器
type DashboardHandler struct {
	store DashboardStore
}

// NewDashboardHandler 创建看板处理器
func NewDashboardHandler(s DashboardStore) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// GetState 获取当前状态快照
// GET /api/dashboard/state
func (h *DashboardHandler) GetState(c *gin.Context) {
	HandleSuccess(c, h.store.Snapshot())
}

// FetchUserInfo 拉取用户实时信息
// POST /api/dashboard/users/:userId
// 拉取失败时 code 仍为成功，失败信息体现在快照的 error 字段
func (h *DashboardHandler) FetchUserInfo(c *gin.Context) {
	var req request.UserIdRequest
	if err := c.ShouldBindUri(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	h.store.FetchUserInfo(c.Request.Context(), req.UserId)
	HandleSuccess(c, h.store.Snapshot())
}

// FetchLocationHistory 拉取用户位置历史
// POST /api/dashboard/users/:userId/history
func (h *DashboardHandler) FetchLocationHistory(c *gin.Context) {
	var req request.UserIdRequest
	if err := c.ShouldBindUri(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	h.store.FetchLocationHistory(c.Request.Context(), req.UserId)
	HandleSuccess(c, h.store.Snapshot())
}

// FetchAllUsers 拉取用户列表
// POST /api/dashboard/users?page=1&pageSize=20，不带分页参数时使用默认分页
func (h *DashboardHandler) FetchAllUsers(c *gin.Context) {
	var req request.GetUsersPageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if req.Page == 0 && req.PageSize == 0 {
		h.store.FetchAllUsers(c.Request.Context())
	} else {
		h.store.FetchUsersPage(c.Request.Context(), req.Page, req.PageSize)
	}
	HandleSuccess(c, h.store.Snapshot())
}

// ClearUserData 清空当前用户、位置历史和错误信息
// POST /api/dashboard/clear
func (h *DashboardHandler) ClearUserData(c *gin.Context) {
	h.store.ClearUserData()
	HandleSuccess(c, h.store.Snapshot())
}
