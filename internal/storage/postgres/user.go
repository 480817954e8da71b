package postgres

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/VitaminP8/bloggery/internal/user"
	"github.com/VitaminP8/bloggery/models"
	"github.com/golang-jwt/jwt"

	"golang.org/x/crypto/bcrypt"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

func (s *UserPostgresStorage) RegisterUser(name, email, password string) (*models.User, error) {
	// проверка - не занят ли email
	var existUser models.User
	err := DB.Where("email = ?", email).First(&existUser).Error
	if err == nil {
		return nil, user.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
	}

	err = DB.Create(newUser).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

func (s *UserPostgresStorage) LoginUser(email, password string) (string, error) {
	// ошибки различимы намеренно: "email не найден" и "пароль неверный"
	// показываются пользователю по-разному (поведение исходного блога)
	var u models.User
	err := DB.Where("email = ?", email).First(&u).Error
	if err != nil {
		return "", user.ErrEmailNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return "", user.ErrWrongPassword
	}

	// достаем из .env jwtSecret
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set in environment")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"name":    u.Name,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *UserPostgresStorage) GetUserById(id uint) (*models.User, error) {
	var u models.User
	err := DB.First(&u, id).Error
	if err != nil {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (s *UserPostgresStorage) GetUserByName(name string) (*models.User, error) {
	var u models.User
	err := DB.Where("name = ?", name).First(&u).Error
	if err != nil {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}
