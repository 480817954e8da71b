package memory

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/VitaminP8/bloggery/internal/user"
	"github.com/VitaminP8/bloggery/models"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

type UserMemoryStorage struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextId uint
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:  make(map[uint]*models.User),
		nextId: 1,
	}
}

func (s *UserMemoryStorage) RegisterUser(name, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, user.ErrEmailTaken
		}
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
	newUser.ID = s.nextId
	newUser.CreatedAt = time.Now()
	s.nextId++

	s.users[newUser.ID] = newUser

	return newUser, nil
}

func (s *UserMemoryStorage) LoginUser(email, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// ошибки различимы намеренно (поведение исходного блога):
	// пользователь видит, что именно не так - email или пароль
	var found *models.User
	for _, u := range s.users {
		if u.Email == email {
			found = u
			break
		}
	}
	if found == nil {
		return "", user.ErrEmailNotFound
	}

	err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(password))
	if err != nil {
		return "", user.ErrWrongPassword
	}

	// достаем из .env jwtSecret
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set in environment")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": found.ID,
		"name":    found.Name,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *UserMemoryStorage) GetUserById(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *UserMemoryStorage) GetUserByName(name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}
