//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"lumina-hotel-api/internal/handler/dto/request"
	"lumina-hotel-api/tests/common/dbtest"
	"lumina-hotel-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/admin/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token, "login response has no token")

	return resp.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestAdmin(t, db, email)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
