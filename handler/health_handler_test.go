// handler/health_handler_test.go
package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-user-api/handler"
	"go-user-api/router"
)

func TestHealthCheck_Integration(t *testing.T) {
	// Setup router. For this test, the user handler can be nil.
	r := router.NewRouter(handler.NewUserHandler(nil))

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	// Execute
	r.ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"User API is healthy and running"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}
