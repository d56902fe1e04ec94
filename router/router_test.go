// file: router/router_test.go

package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-user-api/app"
	"go-user-api/handler"
	"go-user-api/model"
	"go-user-api/repository"
	"go-user-api/router"
)

func newTestServer(t *testing.T) (http.Handler, *repository.UserRepository) {
	t.Helper()

	userRepo := repository.NewUserRepository()
	m, err := app.BuildMediator(userRepo)
	require.NoError(t, err)

	return router.NewRouter(handler.NewUserHandler(m)), userRepo
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateUser_Valid(t *testing.T) {
	r, _ := newTestServer(t)

	rr := doRequest(t, r, "POST", "/users", `{"name":"Jane","email":"jane@mail.com"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "jane@mail.com", user.Email)
}

func TestCreateUser_EmptyNameRejectedBeforeHandler(t *testing.T) {
	r, userRepo := newTestServer(t)

	rr := doRequest(t, r, "POST", "/users", `{"name":"","email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  []map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Name", body.Errors[0]["field"])
	assert.Equal(t, "required", body.Errors[0]["rule"])

	// The handler never ran: the repository is untouched.
	users, err := userRepo.GetAllUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateUser_ThirdIDAfterSeeding(t *testing.T) {
	r, userRepo := newTestServer(t)

	doRequest(t, r, "POST", "/users", `{"name":"Ada","email":"ada@mail.com"}`)
	doRequest(t, r, "POST", "/users", `{"name":"Grace","email":"grace@mail.com"}`)
	rr := doRequest(t, r, "POST", "/users", `{"name":"Jane","email":"jane@mail.com"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, 3, user.ID)

	users, err := userRepo.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestCreateUser_MalformedBody(t *testing.T) {
	r, _ := newTestServer(t)

	rr := doRequest(t, r, "POST", "/users", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	// GetUserQuery has no validators, so validation is a pass-through and the
	// repository's not-found error reaches the boundary.
	r, _ := newTestServer(t)

	rr := doRequest(t, r, "GET", "/users/99", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetUser_InvalidID(t *testing.T) {
	r, _ := newTestServer(t)

	rr := doRequest(t, r, "GET", "/users/abc", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUser_RepeatedQueryIsIdempotent(t *testing.T) {
	r, _ := newTestServer(t)
	doRequest(t, r, "POST", "/users", `{"name":"Jane","email":"jane@mail.com"}`)

	first := doRequest(t, r, "GET", "/users/1", "")
	second := doRequest(t, r, "GET", "/users/1", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestListUsers(t *testing.T) {
	r, _ := newTestServer(t)
	doRequest(t, r, "POST", "/users", `{"name":"Ada","email":"ada@mail.com"}`)
	doRequest(t, r, "POST", "/users", `{"name":"Grace","email":"grace@mail.com"}`)

	rr := doRequest(t, r, "GET", "/users", "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var users []model.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].Name)
	assert.Equal(t, "Grace", users[1].Name)
}

func TestDeleteUser(t *testing.T) {
	r, _ := newTestServer(t)
	doRequest(t, r, "POST", "/users", `{"name":"Jane","email":"jane@mail.com"}`)

	rr := doRequest(t, r, "DELETE", "/users/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, r, "GET", "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	r, _ := newTestServer(t)

	rr := doRequest(t, r, "GET", "/users", "")
	assert.NotEmpty(t, rr.Header().Get(handler.RequestIDHeader))

	req, err := http.NewRequest("GET", "/users", nil)
	require.NoError(t, err)
	req.Header.Set(handler.RequestIDHeader, "test-id")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "test-id", rr.Header().Get(handler.RequestIDHeader))
}
