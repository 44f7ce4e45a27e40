package request

// GetUsersPageRequest 分页获取用户坐标列表请求
// 使用位置:
//   - internal/mock/handler.go: ListCoordinates
//   - internal/handler/dashboard_handler.go: FetchAllUsers
type GetUsersPageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}
