package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"user_location_dashboard/internal/config"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/constants"
	"user_location_dashboard/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.APIConfig{BaseURL: srv.URL + "/api/v1/"}, WithHTTPClient(srv.Client()))
}

// roundTripFunc 把函数适配为 http.RoundTripper
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestWithHTTPClient_UsesCustomTransport(t *testing.T) {
	var seen string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"users":[],"total":0}`)),
			Request:    r,
		}, nil
	})}
	c := New(config.APIConfig{BaseURL: "http://upstream.invalid/api/v1"}, WithHTTPClient(hc))

	resp, err := c.GetAllUsers(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "http://upstream.invalid/api/v1/users/coordinates?page=2&pageSize=5", seen)
	assert.Empty(t, resp.Data.Users)
}

func TestGetUserInfo_AdaptsRawRecord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/coordinates/user001", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(constants.REQUEST_ID_HEADER))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":"user001","gender":"女","age":30,"region":"上海市浦东新区",
			"latitude":31.2304,"longitude":121.4737,"lastUpdate":1700000000000}`))
	})

	resp, err := c.GetUserInfo(context.Background(), "user001")
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, "user001", resp.Data.UserId)
	assert.Equal(t, model.GenderFemale, resp.Data.Gender)
	assert.Equal(t, "上海市浦东新区", resp.Data.CurrentLocation.Region)
	assert.Equal(t, "2023-11-14T22:13:20.000Z", resp.Data.LastUpdateTime)
}

func TestGetUserInfo_EmptyIdSendsNothing(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := c.GetUserInfo(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	assert.False(t, called)
}

func TestGetUserInfo_Non2xxPropagates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.GetUserInfo(context.Background(), "user001")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeUpstreamStatus, errorx.GetCode(err))
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}

func TestGetUserInfo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := c.GetUserInfo(context.Background(), "user001")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeTransport, errorx.GetCode(err))
}

func TestGetUserInfo_BadBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.GetUserInfo(context.Background(), "user001")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeDecode, errorx.GetCode(err))
}

func TestGetUserLocationHistory_UnknownIsEmptySuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/coordinates/history/unknown-id", r.URL.Path)
		http.NotFound(w, r)
	})

	resp, err := c.GetUserLocationHistory(context.Background(), "unknown-id")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "unknown-id", resp.Data.UserId)
	assert.NotNil(t, resp.Data.Locations)
	assert.Empty(t, resp.Data.Locations)
}

func TestGetUserLocationHistory_ForcesRequestedUserId(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"userId":"other","locations":[
			{"latitude":39.9042,"longitude":116.4074,"timestamp":"2024-05-01T08:00:00Z","region":"北京市朝阳区"}]}`))
	})

	resp, err := c.GetUserLocationHistory(context.Background(), "user001")
	require.NoError(t, err)
	assert.Equal(t, "user001", resp.Data.UserId)
	require.Len(t, resp.Data.Locations, 1)
	assert.Equal(t, "北京市朝阳区", resp.Data.Locations[0].Region)
}

func TestGetUserLocationHistory_ServerErrorPropagates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.GetUserLocationHistory(context.Background(), "user001")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
}

func TestGetAllUsers_ForwardsPagination(t *testing.T) {
	var gotPage, gotSize string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/coordinates", r.URL.Path)
		gotPage = r.URL.Query().Get("page")
		gotSize = r.URL.Query().Get("pageSize")
		_, _ = w.Write([]byte(`{"users":[{"userId":"user001","gender":"male"}],"total":3}`))
	})

	resp, err := c.GetAllUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", gotPage)
	assert.Equal(t, "20", gotSize)
	assert.Equal(t, 3, resp.Data.Total)
	require.Len(t, resp.Data.Users, 1)
	assert.Equal(t, model.GenderMale, resp.Data.Users[0].Gender)

	_, err = c.GetAllUsers(context.Background(), 7, 500)
	require.NoError(t, err)
	assert.Equal(t, "7", gotPage)
	assert.Equal(t, "500", gotSize)
}

func TestGetAllUsers_NullUsersBecomesEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":null,"total":0}`))
	})

	resp, err := c.GetAllUsers(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.NotNil(t, resp.Data.Users)
	assert.Empty(t, resp.Data.Users)
}
