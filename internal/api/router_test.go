package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/pagekit/internal/client"
	"github.com/AlexZinkM/pagekit/internal/model"
	"github.com/AlexZinkM/pagekit/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *client.Client) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hello</h1>"), 0o644))

	router, err := SetupRouter(store.NewUserStore(), dir, nil)
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, client.NewClient(srv.URL)
}

func TestSetupRouterRequiresStore(t *testing.T) {
	_, err := SetupRouter(nil, "", nil)
	assert.Error(t, err)
}

func TestRouterRegisterThenFetch(t *testing.T) {
	_, c := newTestServer(t)

	res := c.Do(http.MethodPost, "/api/users", model.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"})
	require.True(t, res.OK(), "%v", res.Err)
	id := res.Get("id").String()

	var user model.User
	res = c.Do(http.MethodGet, "/api/users/"+id, nil)
	require.True(t, res.OK())
	require.NoError(t, res.Decode(&user))
	assert.Equal(t, "Ann", user.Name)

	var list model.UsersResponse
	res = c.Do(http.MethodGet, "/api/users", map[string]any{"page": 1, "size": 5})
	require.NoError(t, res.Decode(&list))
	assert.Len(t, list.Users, 1)
	assert.Equal(t, 5, list.Page.PageSize)
}

func TestRouterApplicationError(t *testing.T) {
	_, c := newTestServer(t)

	res := c.Do(http.MethodPost, "/api/authenticate", model.AuthenticateRequest{Email: "nobody@example.com", Password: "x"})

	require.NotNil(t, res.Err)
	assert.Equal(t, model.CodeAuthFailed, res.Err.Code)
	assert.Equal(t, http.StatusOK, res.Err.Status)
	assert.False(t, res.Err.IsNetworkError())
	assert.JSONEq(t, `{"error":"auth:failed","data":"email","message":"Invalid email."}`, string(res.Err.Raw))
}

func TestRouterWrongMethodIsTransportFailure(t *testing.T) {
	_, c := newTestServer(t)

	res := c.Do(http.MethodPost, "/api/ping", nil)

	require.NotNil(t, res.Err)
	assert.True(t, res.Err.IsNetworkError())
	assert.Equal(t, "HTTP405", res.Err.Code)
}

func TestRouterStaticAndSwagger(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/static/index.html")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<h1>hello</h1>", string(body))

	resp, err = http.Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/api/users")
}
