package service

import (
	"time"

	"bookshop/config"
	"bookshop/util/common"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

// TokenClaims is the bearer-token payload carrying the customer's identity.
type TokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenService mints and verifies signed bearer tokens.
type TokenService struct{}

// Generate mints an HS256 token carrying the username, valid for one hour.
func (s *TokenService) Generate(username string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.GetSecret())
}

// Parse verifies a token's signature and expiry and returns its claims.
func (s *TokenService) Parse(tokenString string) (*TokenClaims, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return config.GetSecret(), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return nil, err
	}
	if claims.Username == "" {
		return nil, common.NewError("token has no username claim")
	}
	return &claims, nil
}
