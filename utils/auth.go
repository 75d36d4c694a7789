package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only role the storefront issues tokens for.
const RoleAdmin = "admin"

// TokenTTL is how long an admin token stays valid.
const TokenTTL = 12 * time.Hour

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// ErrInvalidAccessCode is returned when the admin access code does not match.
var ErrInvalidAccessCode = errors.New("invalid access code")

// Claims represents the JWT claims
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a signed token for name with the given role
func GenerateJWT(name, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name: name,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseJWT validates tokenStr and returns its claims.
func ParseJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AccessGate checks the admin console access code. Only the bcrypt hash is kept.
type AccessGate struct {
	hash []byte
}

// NewAccessGate hashes code. An empty code yields a gate that rejects everything.
func NewAccessGate(code string) (*AccessGate, error) {
	if code == "" {
		return &AccessGate{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AccessGate{hash: hash}, nil
}

// Check compares code against the stored hash.
func (g *AccessGate) Check(code string) error {
	if len(g.hash) == 0 || code == "" {
		return ErrInvalidAccessCode
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(code)); err != nil {
		return ErrInvalidAccessCode
	}
	return nil
}
