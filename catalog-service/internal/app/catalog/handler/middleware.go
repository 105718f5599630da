package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims mirrors the tokens issued by the identity provider.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
	jwt.RegisteredClaims
}

// AuthMiddleware guards catalog writes with HS256 bearer tokens.
type AuthMiddleware struct {
	jwtSecret []byte
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: []byte(jwtSecret)}
}

func abortUnauthorized(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, entity.APIResponse{Success: false, Message: message})
}

func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			abortUnauthorized(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			abortUnauthorized(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role_name", claims.RoleName)

		c.Next()
	}
}

func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleName := c.GetString("role_name")
		if roleName == "" {
			abortUnauthorized(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !slices.Contains(roles, roleName) {
			abortUnauthorized(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}
