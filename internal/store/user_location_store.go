// Package store 提供用户位置看板的 Resource Store
// Store 显式构造、按引用传递给 UI 绑定层，不使用全局单例
package store

import (
	"context"
	"sync"

	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/constants"

	"go.uber.org/zap"
)

// LocationAPI Store 依赖的 Resource Client 接口
type LocationAPI interface {
	GetUserInfo(ctx context.Context, userId string) (*model.ApiResponse[model.UserInfo], error)
	GetUserLocationHistory(ctx context.Context, userId string) (*model.ApiResponse[model.LocationHistory], error)
	GetAllUsers(ctx context.Context, page, pageSize int) (*model.ApiResponse[model.UserPage], error)
}

// Listener 状态变更监听器
// 同一次变更的快照会传给所有监听器，监听器不应修改其中的切片
type Listener func(State)

// UserLocationStore 持有"当前用户"、"其位置历史"和"用户列表"的唯一视图
//
// 三个动作共享同一对 loading/error 标志：两个动作并发执行时，
// 后结束的一方决定最终的 loading/error（后写者胜）。
type UserLocationStore struct {
	api LocationAPI

	mu              sync.RWMutex
	currentUser     *model.UserInfo
	locationHistory *model.LocationHistory
	allUsers        []model.UserInfo
	allUsersTotal   int
	loading         bool
	err             *string

	// notifyMu 串行化"修改 + 通知"，监听器按修改顺序收到快照
	// 为什么：mutate 释放 mu 之后才通知，没有这把锁时两个并发动作的通知可能倒序送达，
	// 推送中心最后停在一个旧快照上
	notifyMu sync.Mutex

	listenerMu sync.Mutex
	listeners  map[int]Listener
	nextId     int
}

// New 创建一个空状态的 Store
func New(api LocationAPI) *UserLocationStore {
	return &UserLocationStore{
		api:       api,
		allUsers:  []model.UserInfo{},
		listeners: make(map[int]Listener),
	}
}

// HasUser currentUser 是否存在
func (s *UserLocationStore) HasUser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser != nil
}

// HasLocationHistory locationHistory 是否存在（空列表也算存在）
func (s *UserLocationStore) HasLocationHistory() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locationHistory != nil
}

// Loading 是否有动作正在进行
func (s *UserLocationStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ErrorMessage 最近一次失败的提示信息，没有错误时返回 nil
func (s *UserLocationStore) ErrorMessage() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err == nil {
		return nil
	}
	msg := *s.err
	return &msg
}

// Snapshot 返回当前状态的深拷贝
func (s *UserLocationStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe 注册监听器，返回取消订阅函数
// 监听器在每次状态变更后同步调用，调用时不持有状态锁，可以调用 Snapshot；
// 但不能在监听器里再触发 Store 的动作，否则会在 notifyMu 上死锁
func (s *UserLocationStore) Subscribe(l Listener) (unsubscribe func()) {
	s.listenerMu.Lock()
	id := s.nextId
	s.nextId++
	s.listeners[id] = l
	s.listenerMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenerMu.Lock()
			delete(s.listeners, id)
			s.listenerMu.Unlock()
		})
	}
}

// FetchUserInfo 获取用户实时信息并写入 currentUser
func (s *UserLocationStore) FetchUserInfo(ctx context.Context, userId string) {
	s.run(ctx, "fetchUserInfo", constants.ERR_FETCH_USER_INFO,
		func(ctx context.Context) (func(), error) {
			resp, err := s.api.GetUserInfo(ctx, userId)
			if err != nil {
				return nil, err
			}
			user := resp.Data
			return func() { s.currentUser = &user }, nil
		},
		func() { s.currentUser = nil },
	)
}

// FetchLocationHistory 获取用户位置历史并写入 locationHistory
func (s *UserLocationStore) FetchLocationHistory(ctx context.Context, userId string) {
	s.run(ctx, "fetchLocationHistory", constants.ERR_FETCH_LOCATION_HISTORY,
		func(ctx context.Context) (func(), error) {
			resp, err := s.api.GetUserLocationHistory(ctx, userId)
			if err != nil {
				return nil, err
			}
			history := resp.Data.Clone()
			return func() { s.locationHistory = history }, nil
		},
		func() { s.locationHistory = nil },
	)
}

// FetchAllUsers 使用默认分页获取用户列表
func (s *UserLocationStore) FetchAllUsers(ctx context.Context) {
	s.FetchUsersPage(ctx, constants.DEFAULT_PAGE, constants.DEFAULT_PAGE_SIZE)
}

// FetchUsersPage 获取指定页的用户列表并写入 allUsers
func (s *UserLocationStore) FetchUsersPage(ctx context.Context, page, pageSize int) {
	s.run(ctx, "fetchAllUsers", constants.ERR_FETCH_ALL_USERS,
		func(ctx context.Context) (func(), error) {
			resp, err := s.api.GetAllUsers(ctx, page, pageSize)
			if err != nil {
				return nil, err
			}
			users := make([]model.UserInfo, len(resp.Data.Users))
			copy(users, resp.Data.Users)
			total := resp.Data.Total
			return func() {
				s.allUsers = users
				s.allUsersTotal = total
			}, nil
		},
		func() {
			s.allUsers = []model.UserInfo{}
			s.allUsersTotal = 0
		},
	)
}

// ClearUserData 同步清空 currentUser、locationHistory 和 error
// 不影响 allUsers 和 loading
func (s *UserLocationStore) ClearUserData() {
	s.mutate(func() {
		s.currentUser = nil
		s.locationHistory = nil
		s.err = nil
	})
}

// run 统一的加载生命周期：
//  1. loading=true, error=nil
//  2. 调用 Resource Client
//  3. 成功时写入对应状态槽
//  4. 失败时记录错误信息并清空对应状态槽
//  5. 无论成功失败（包括 panic），最后 loading=false
func (s *UserLocationStore) run(ctx context.Context, action, fallbackMsg string,
	call func(context.Context) (apply func(), err error), reset func()) {

	s.mutate(func() {
		s.loading = true
		s.err = nil
	})
	// 为什么：放在 defer 里，call 发生 panic 时 loading 也会复位，页面不会一直转圈
	defer s.mutate(func() { s.loading = false })

	apply, err := call(ctx)
	if err != nil {
		msg := err.Error()
		// 为什么：页面只认字符串，空消息会让用户看到一个没有内容的错误提示
		if msg == "" {
			msg = fallbackMsg
		}
		zap.L().Warn("store action failed", zap.String("action", action), zap.Error(err))
		s.mutate(func() {
			s.err = &msg
			reset()
		})
		return
	}
	s.mutate(apply)
}

// mutate 在写锁内修改状态，释放锁之后通知监听器
// 整个过程持有 notifyMu：下一次修改要等本次的监听器全部返回
func (s *UserLocationStore) mutate(fn func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	// 为什么：监听器可能很慢（序列化、写 channel），不能让读快照的请求被它阻塞
	s.notify(snap)
}

func (s *UserLocationStore) notify(snap State) {
	s.listenerMu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.listenerMu.Unlock()

	for _, l := range ls {
		l(snap)
	}
}

func (s *UserLocationStore) snapshotLocked() State {
	st := State{
		LocationHistory: s.locationHistory.Clone(),
		AllUsers:        make([]model.UserInfo, len(s.allUsers)),
		AllUsersTotal:   s.allUsersTotal,
		Loading:         s.loading,
	}
	copy(st.AllUsers, s.allUsers)
	if s.currentUser != nil {
		user := *s.currentUser
		st.CurrentUser = &user
	}
	if s.err != nil {
		msg := *s.err
		st.Error = &msg
	}
	st.HasUser = st.CurrentUser != nil
	st.HasLocationHistory = st.LocationHistory != nil
	return st
}
