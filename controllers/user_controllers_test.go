package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/controllers"
	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *utils.TokenManager, *gorm.DB) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:authtest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	db.Exec("DELETE FROM users")

	tokens := utils.NewTokenManager("test-secret", time.Hour)
	userCtrl := controllers.NewUserController(db, tokens)

	r := gin.New()
	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)
	auth := r.Group("/")
	auth.Use(middlewares.AuthRequired(tokens))
	auth.GET("/profile", userCtrl.GetProfile)

	return r, tokens, db
}

func newRecorder(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginAndProfile(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	franchiseID := uint(3)
	w := doJSON(router, "POST", "/register", gin.H{
		"name":         "Budi",
		"email":        "budi@example.com",
		"password":     "rahasia-banget",
		"role":         models.RoleFranchiseOwner,
		"franchise_id": franchiseID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, "POST", "/login", gin.H{
		"email":    "budi@example.com",
		"password": "rahasia-banget",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginData struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeData(t, w, &loginData)
	require.NotEmpty(t, loginData.Token)
	assert.Equal(t, models.RoleFranchiseOwner, loginData.User.Role)

	req, _ := http.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginData.Token)
	rec := newRecorder(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRejectsMissingAndExpiredTokens(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	// Tanpa kredensial -> 401 sebelum logika bisnis.
	req, _ := http.NewRequest("GET", "/profile", nil)
	rec := newRecorder(router, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Token kadaluarsa -> 401.
	expired := utils.NewTokenManager("test-secret", -time.Hour)
	token, err := expired.GenerateToken(1, models.RoleAdmin, "Admin", nil, nil)
	require.NoError(t, err)

	req, _ = http.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = newRecorder(router, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Token dengan secret berbeda -> 401.
	forged := utils.NewTokenManager("other-secret", time.Hour)
	token, err = forged.GenerateToken(1, models.RoleAdmin, "Admin", nil, nil)
	require.NoError(t, err)

	req, _ = http.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = newRecorder(router, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRequiresTenantForScopedRoles(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	w := doJSON(router, "POST", "/register", gin.H{
		"name":     "Sari",
		"email":    "sari@example.com",
		"password": "rahasia-banget",
		"role":     models.RoleVendorStaff,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "vendor_id is required")
}
