package postgres

import (
	"context"
	"fmt"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/clock"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/models"
	"github.com/jinzhu/gorm"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

func (s *PostPostgresStorage) CreatePost(ctx context.Context, title, subtitle, body, imgURL string) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user id from context: %w", err)
	}

	// заголовки уникальны - проверяем заранее, чтобы вернуть типизированную
	// ошибку, а не ошибку драйвера
	var exist models.Post
	if DB.Where("title = ?", title).First(&exist).Error == nil {
		return nil, post.ErrTitleTaken
	}

	newPost := &models.Post{
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		ImgURL:   imgURL,
		Date:     clock.PostDate(clock.Now()),
		UserID:   userID,
	}

	err = DB.Create(newPost).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return newPost, nil
}

func (s *PostPostgresStorage) GetPostById(id string) (*models.Post, error) {
	var p models.Post
	err := DB.First(&p, id).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, post.ErrNotFound
		}
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return &p, nil
}

func (s *PostPostgresStorage) GetAllPosts() ([]*models.Post, error) {
	var posts []models.Post
	err := DB.Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	var results []*models.Post
	for i := range posts {
		results = append(results, &posts[i])
	}

	return results, nil
}

func (s *PostPostgresStorage) GetPostsByAuthor(userID uint) ([]*models.Post, error) {
	var posts []models.Post
	err := DB.Where("user_id = ?", userID).Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts by author: %w", err)
	}

	var results []*models.Post
	for i := range posts {
		results = append(results, &posts[i])
	}

	return results, nil
}

// UpdatePost перезаписывает поля поста. Проверки авторства нет намеренно:
// любой авторизованный пользователь может редактировать любой пост
// (наблюдаемое поведение исходного блога, зафиксировано в DESIGN.md)
func (s *PostPostgresStorage) UpdatePost(ctx context.Context, id, title, subtitle, body, imgURL string) error {
	_, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	var p models.Post
	err = DB.First(&p, id).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return post.ErrNotFound
		}
		return fmt.Errorf("could not get post: %w", err)
	}

	// заголовок не должен столкнуться с другим постом
	var exist models.Post
	if DB.Where("title = ? AND id <> ?", title, p.ID).First(&exist).Error == nil {
		return post.ErrTitleTaken
	}

	err = DB.Model(&p).Updates(map[string]interface{}{
		"title":    title,
		"subtitle": subtitle,
		"body":     body,
		"img_url":  imgURL,
	}).Error
	if err != nil {
		return fmt.Errorf("could not update post: %w", err)
	}

	return nil
}

// DeletePostById удаляет пост вместе с его комментариями, чтобы не оставлять
// осиротевшие комментарии. Проверки авторства нет намеренно (см. UpdatePost)
func (s *PostPostgresStorage) DeletePostById(ctx context.Context, id string) error {
	_, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	var p models.Post
	err = DB.First(&p, id).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return post.ErrNotFound
		}
		return fmt.Errorf("could not get post: %w", err)
	}

	err = DB.Where("post_id = ?", p.ID).Delete(&models.Comment{}).Error
	if err != nil {
		return fmt.Errorf("could not delete post comments: %w", err)
	}

	err = DB.Delete(&p).Error
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return nil
}
