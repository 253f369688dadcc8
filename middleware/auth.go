package middleware

import (
	"net/http"
	"strings"
	"time"

	"restaurant-site/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AdminID  string           `json:"admin_id"`
	Username string           `json:"username"`
	Role     models.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// JWT signs and checks admin session tokens.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret []byte, ttl time.Duration) *JWT {
	return &JWT{secret: secret, ttl: ttl, now: time.Now}
}

// GenerateToken creates a signed JWT for an admin
func (j *JWT) GenerateToken(admin models.AdminUser) (string, time.Time, error) {
	now := j.now()
	expires := now.Add(j.ttl)
	claims := Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	return signed, expires, err
}

// AuthRequired validates the JWT and injects claims into context
func (j *JWT) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return j.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("adminID", claims.AdminID)
		c.Set("username", claims.Username)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.AdminRole(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		names := make([]string, len(roles))
		for i, r := range roles {
			names[i] = string(r)
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + strings.Join(names, ", "),
		})
		c.Abort()
	}
}

// GetAdminID extracts caller admin ID from context
func GetAdminID(c *gin.Context) string {
	return c.GetString("adminID")
}

// GetUsername extracts caller username from context
func GetUsername(c *gin.Context) string {
	return c.GetString("username")
}
