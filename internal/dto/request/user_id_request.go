package request

// UserIdRequest 路径参数中的用户 id
// 使用位置:
//   - internal/mock/handler.go: GetCoordinates, GetHistory
//   - internal/handler/dashboard_handler.go: FetchUserInfo, FetchLocationHistory
type UserIdRequest struct {
	UserId string `uri:"userId" binding:"required,max=64"`
}
