package model

// ApiResponse 所有 Resource Client 操作统一返回的信封
// Data 只有在 Success 为 true 时才有意义
type ApiResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Ok 构造成功响应
func Ok[T any](data T) *ApiResponse[T] {
	return &ApiResponse[T]{Success: true, Data: data}
}
