package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adiwirasta/franchise-supply-app/utils"
)

const claimsKey = "claims"

// AuthRequired memvalidasi bearer token dan menaruh Claims bertipe di context.
// Request tanpa kredensial valid ditolak 401 sebelum logika bisnis berjalan.
func AuthRequired(tm *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Authorization header missing"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid authorization header format"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tm.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// SetClaims dipakai test untuk menyuntikkan identitas tanpa token asli.
func SetClaims(claims *utils.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims mengambil Claims yang sudah dipasang AuthRequired.
func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
