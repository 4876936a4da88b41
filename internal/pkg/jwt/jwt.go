package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateToken issues a company-scoped access token for API clients.
	GenerateToken(companyID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey           string
	tokenExpirationTime string
	tokenAuth           *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, tokenExpirationTime string) Service {
	return &JWTService{
		secretKey:           secretKey,
		tokenExpirationTime: tokenExpirationTime,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(companyID string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.tokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"company_id": companyID,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt, nil
}
