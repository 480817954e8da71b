package user

import (
	"errors"

	"github.com/VitaminP8/bloggery/models"
)

// Ошибки логина различимы намеренно: исходный блог показывал пользователю,
// что именно не так — email или пароль
var (
	ErrEmailTaken    = errors.New("user with this email already exists")
	ErrEmailNotFound = errors.New("email does not exist")
	ErrWrongPassword = errors.New("password incorrect")
	ErrUserNotFound  = errors.New("user not found")
)

type UserStorage interface {
	// RegisterUser создает пользователя с bcrypt-хэшем пароля
	RegisterUser(name, email, password string) (*models.User, error)
	// LoginUser проверяет пароль и возвращает подписанный JWT
	LoginUser(email, password string) (string, error)
	GetUserById(id uint) (*models.User, error)
	GetUserByName(name string) (*models.User, error)
}
