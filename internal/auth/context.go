// internal/auth/context.go
package auth

import (
	"context"
	"errors"
)

type contextKey string

const userIDKey = contextKey("userID")

// Сохраняет userID в контексте
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Достает userID из контекста
func GetUserIDFromContext(ctx context.Context) (uint, error) {
	val := ctx.Value(userIDKey)
	id, ok := val.(uint)
	if !ok {
		return 0, errors.New("user ID not found in context")
	}
	return id, nil
}

// IsSuperUser — первый зарегистрированный аккаунт считается супер-пользователем
func IsSuperUser(userID uint) bool {
	return userID == 1
}
