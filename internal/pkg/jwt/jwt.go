package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Role is the access level carried in the "role" claim.
type Role string

const (
	RoleManager   Role = "manager"
	RoleAssociate Role = "associate"
)

var (
	ErrInvalidToken      = errors.New("invalid access token")
	ErrManagerRequired   = errors.New("manager role required")
	ErrStoreAccessDenied = errors.New("token is not scoped to this store")
)

// Claims is what the API reads from a verified access token.
type Claims struct {
	UserID  string
	Role    Role
	StoreID *string // store the user is scoped to, nil for regional staff
}

// IsManager reports whether the caller may lock schedules and override
// actual hours.
func (c Claims) IsManager() bool {
	return c.Role == RoleManager
}

// CanAccessStore reports whether the token may act on storeID. Regional
// staff carry no store claim and may act anywhere.
func (c Claims) CanAccessStore(storeID string) bool {
	return c.StoreID == nil || *c.StoreID == storeID
}

// Service verifies tokens issued by the identity provider. Token
// generation exists for operational tooling and tests.
type Service interface {
	GenerateAccessToken(userID string, role Role, storeID *string) (token string, expiresAt int64, err error)
	ValidateAccessToken(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, role Role, storeID *string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":  userID,
		"role":     string(role),
		"store_id": j.returnValueOrNil(storeID),
		"type":     "access",
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ValidateAccessToken checks signature, expiry and token type.
func (j *JWTService) ValidateAccessToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return Claims{}, err
	}
	return ClaimsFromMap(claims)
}

// ClaimsFromMap reads Claims out of a decoded claim set, as returned by
// jwtauth.FromContext.
func ClaimsFromMap(claims map[string]interface{}) (Claims, error) {
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return Claims{}, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return Claims{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	c := Claims{UserID: userID, Role: Role(role)}
	if storeID, ok := claims["store_id"].(string); ok && storeID != "" {
		c.StoreID = &storeID
	}
	return c, nil
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	} else {
		return *value
	}
}
