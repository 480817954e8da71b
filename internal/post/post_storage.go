package post

import (
	"context"
	"errors"

	"github.com/VitaminP8/bloggery/models"
)

var (
	ErrNotFound   = errors.New("post not found")
	ErrTitleTaken = errors.New("post with this title already exists")
)

// PostStorage — CRUD постов. Мутации требуют userID в контексте
// (любой авторизованный пользователь; проверки авторства нет — это
// наблюдаемое поведение исходного блога, см. DESIGN.md).
type PostStorage interface {
	CreatePost(ctx context.Context, title, subtitle, body, imgURL string) (*models.Post, error)
	GetPostById(id string) (*models.Post, error)
	GetAllPosts() ([]*models.Post, error)
	GetPostsByAuthor(userID uint) ([]*models.Post, error)
	UpdatePost(ctx context.Context, id, title, subtitle, body, imgURL string) error
	// DeletePostById удаляет пост вместе с его комментариями
	DeletePostById(ctx context.Context, id string) error
}
