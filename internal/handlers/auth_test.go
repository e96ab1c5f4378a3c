package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/asegedech/volunteer-api/internal/constants"
	"github.com/asegedech/volunteer-api/internal/database"
	"github.com/asegedech/volunteer-api/internal/models"
	"github.com/asegedech/volunteer-api/internal/repository"
	"github.com/asegedech/volunteer-api/internal/services"
)

type authTestEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	handler *AuthHandler
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	require.NoError(t, database.SeedAdmins(db))
	database.SetDB(db)

	adminRepo := repository.NewAdminRepository(db)
	authService := services.NewAuthService(adminRepo)
	handler := NewAuthHandler(authService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/login", handler.Login)
	r.POST("/api/logout", handler.Logout)
	r.GET("/api/me", handler.Me)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{db: db, router: r, handler: handler}
}

func (env authTestEnv) login(t *testing.T, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env authTestEnv) me(t *testing.T, cookies []*http.Cookie) map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestAuthHandler_Login_WithEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.login(t, "admin@example.com", "admin")

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, true, response["ok"])
	require.Equal(t, "admin@example.com", response["email"])
}

func TestAuthHandler_Login_BareIdentifierAlias(t *testing.T) {
	env := setupAuthTestEnv(t)

	// "admin" and "admin@example.com" are login aliases of one another
	w := env.login(t, "admin", "admin")

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, true, response["ok"])
	require.Equal(t, "admin@example.com", response["email"])
}

func TestAuthHandler_Login_CaseInsensitiveIdentifier(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.login(t, "Admin@Example.COM", "admin")

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.login(t, "admin", "nope")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	// No session was established
	response := env.me(t, w.Result().Cookies())
	require.Equal(t, false, response["ok"])
}

func TestAuthHandler_Login_UnknownIdentifier(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.login(t, "nobody@example.com", "admin")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_WithSession(t *testing.T) {
	env := setupAuthTestEnv(t)

	login := env.login(t, "admin@example.com", "admin")
	require.Equal(t, http.StatusOK, login.Code)

	response := env.me(t, login.Result().Cookies())
	require.Equal(t, true, response["ok"])
	require.Equal(t, "admin@example.com", response["email"])
}

func TestAuthHandler_Me_Anonymous(t *testing.T) {
	env := setupAuthTestEnv(t)

	// An anonymous /api/me is a 200 with ok:false, not a 401
	response := env.me(t, nil)
	require.Equal(t, false, response["ok"])
}

func TestAuthHandler_Logout_ClearsSession(t *testing.T) {
	env := setupAuthTestEnv(t)

	login := env.login(t, "admin@example.com", "admin")
	require.Equal(t, http.StatusOK, login.Code)
	cookies := login.Result().Cookies()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	response := env.me(t, w.Result().Cookies())
	require.Equal(t, false, response["ok"])
}

func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	env := setupAuthTestEnv(t)

	// Logging out without a session still succeeds
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
