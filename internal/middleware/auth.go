package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

// Claims — полезная нагрузка bearer-токена. Токены выпускает внешний
// identity-сервис; здесь только проверка подписи и разбор личности.
type Claims struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func parseToken(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Auth разбирает bearer-токен в request-scoped identity. Глобального
// состояния сессии нет: обработчики видят только domain.Identity из контекста.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := parseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(identityKey, domain.Identity{
			Email:      claims.Email,
			Name:       claims.Name,
			RollNumber: claims.RollNumber,
			Admin:      claims.Role == "admin",
		})

		c.Next()
	}
}

func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, ok := IdentityFrom(c)
		if !ok || !id.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
