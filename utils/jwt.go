package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims adalah payload kredensial yang dikonsumsi seluruh handler:
// identitas user, role, dan tenant (franchise atau vendor) miliknya.
type Claims struct {
	UserID      uint   `json:"user_id"`
	Role        string `json:"role"`
	FranchiseID *uint  `json:"franchise_id,omitempty"`
	VendorID    *uint  `json:"vendor_id,omitempty"`
	Name        string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager memegang secret hasil injeksi config, bukan global package.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (tm *TokenManager) GenerateToken(userID uint, role, name string, franchiseID, vendorID *uint) (string, error) {
	claims := &Claims{
		UserID:      userID,
		Role:        role,
		FranchiseID: franchiseID,
		VendorID:    vendorID,
		Name:        name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "FranchiseSupplyApp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.UserID == 0 {
		return nil, errors.New("invalid user ID in token")
	}

	return claims, nil
}
