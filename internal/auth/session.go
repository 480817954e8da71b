package auth

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie — имя cookie с JWT токеном сессии
const SessionCookie = "blog_session"

const sessionMaxAge = 72 * 60 * 60 // совпадает со сроком жизни токена

// SetSessionCookie устанавливает cookie сессии после логина/регистрации
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

// ClearSessionCookie сбрасывает сессию безусловно (logout)
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// SessionMiddleware вытаскивает JWT токен из cookie, валидирует его
// и сохраняет userID в context запроса. Невалидный или отсутствующий
// токен — запрос продолжается как неавторизованный.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			c.String(http.StatusInternalServerError, "JWT secret not set")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		idFloat, ok := claims["user_id"].(float64)
		if !ok {
			c.Next()
			return
		}

		userID := uint(idFloat)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))

		c.Next()
	}
}

// CurrentUserID возвращает userID текущей сессии (ошибка — аноним)
func CurrentUserID(c *gin.Context) (uint, error) {
	return GetUserIDFromContext(c.Request.Context())
}

// IsAuthenticated — предикат "есть ли вообще авторизованный пользователь"
func IsAuthenticated(c *gin.Context) bool {
	_, err := CurrentUserID(c)
	return err == nil
}
