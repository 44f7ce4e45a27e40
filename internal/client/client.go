// Package client 提供用户坐标接口的 Resource Client
// 只负责请求/响应的转换，不持有任何可变状态
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"user_location_dashboard/internal/config"
	"user_location_dashboard/internal/dto/respond"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/constants"
	"user_location_dashboard/pkg/errorx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatusError 上游返回非 2xx 状态码
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client 用户坐标接口客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option 客户端可选配置
type Option func(*Client)

// WithHTTPClient 替换底层 http.Client（测试或自定义 Transport 时使用）
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New 根据配置创建客户端，超时只在传输层生效
// 为什么：Store 的动作由调用方的 ctx 控制取消，http.Client 的超时只兜底防止连接挂死
func New(cfg config.APIConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUserInfo 获取用户实时信息
// GET /users/coordinates/{userId}，原始记录经 AdaptUserInfo 归一化后包装为信封
func (c *Client) GetUserInfo(ctx context.Context, userId string) (*model.ApiResponse[model.UserInfo], error) {
	if strings.TrimSpace(userId) == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "userId 不能为空")
	}

	var raw respond.RawUserCoordinate
	if err := c.getJSON(ctx, "/users/coordinates/"+url.PathEscape(userId), nil, &raw); err != nil {
		return nil, err
	}

	info, err := AdaptUserInfo(raw)
	if err != nil {
		return nil, err
	}
	return model.Ok(info), nil
}

// GetUserLocationHistory 获取用户位置历史
// 没有历史记录（404）不算错误，返回成功的空结果 { userId, locations: [] }
func (c *Client) GetUserLocationHistory(ctx context.Context, userId string) (*model.ApiResponse[model.LocationHistory], error) {
	if strings.TrimSpace(userId) == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "userId 不能为空")
	}

	var history model.LocationHistory
	err := c.getJSON(ctx, "/users/coordinates/history/"+url.PathEscape(userId), nil, &history)
	if err != nil {
		if !IsStatus(err, http.StatusNotFound) {
			return nil, err
		}
		history = model.LocationHistory{}
	}

	history.UserId = userId
	if history.Locations == nil {
		history.Locations = []model.LocationPoint{}
	}
	return model.Ok(history), nil
}

// GetAllUsers 分页获取所有用户信息
// page、pageSize 小于等于 0 时使用默认值 1 和 20，其余边界由服务端裁决
func (c *Client) GetAllUsers(ctx context.Context, page, pageSize int) (*model.ApiResponse[model.UserPage], error) {
	if page <= 0 {
		page = constants.DEFAULT_PAGE
	}
	if pageSize <= 0 {
		pageSize = constants.DEFAULT_PAGE_SIZE
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var data model.UserPage
	if err := c.getJSON(ctx, "/users/coordinates", query, &data); err != nil {
		return nil, err
	}
	if data.Users == nil {
		data.Users = []model.UserInfo{}
	}
	return model.Ok(data), nil
}

// IsStatus 判断错误是否为指定状态码的上游响应
func IsStatus(err error, status int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == status
}

// getJSON 发送 GET 请求并把 2xx 响应体解码到 out
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeInvalidParam, "构造请求 %s 失败", path)
	}
	// 为什么：同一个 request id 会出现在两端的日志里，排查 mock 与看板之间的问题时可以对上
	requestId := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(constants.REQUEST_ID_HEADER, requestId)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Warn("api request failed",
			zap.String("url", target),
			zap.String("request_id", requestId),
			zap.Error(err),
		)
		return errorx.Wrapf(err, errorx.CodeTransport, "请求 %s 失败", path)
	}
	defer resp.Body.Close()

	zap.L().Debug("api request",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestId),
		zap.Duration("cost", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 为什么：只截取前 512 字节，出错的上游可能返回整页 HTML
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errorx.Wrapf(&StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))},
			errorx.CodeUpstreamStatus, "请求 %s 返回异常状态", path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errorx.Wrapf(err, errorx.CodeDecode, "解析 %s 响应失败", path)
	}
	return nil
}
