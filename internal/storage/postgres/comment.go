package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/clock"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/models"
	"github.com/jinzhu/gorm"
)

type CommentPostgresStorage struct{}

func NewCommentPostgresStorage() *CommentPostgresStorage {
	return &CommentPostgresStorage{}
}

func (s *CommentPostgresStorage) CreateComment(ctx context.Context, postID, text string) (*models.Comment, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	postIDint, err := strconv.Atoi(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}
	postIDUint := uint(postIDint)

	var p models.Post
	err = DB.First(&p, postIDUint).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, post.ErrNotFound
		}
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	comment := &models.Comment{
		Text:   text,
		Date:   clock.CommentDate(clock.Now()),
		PostID: postIDUint,
		UserID: userID,
	}

	err = DB.Create(comment).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return comment, nil
}

func (s *CommentPostgresStorage) GetComments(postID string) ([]*models.Comment, error) {
	postIDint, err := strconv.Atoi(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}

	var comments []models.Comment
	err = DB.Where("post_id = ?", uint(postIDint)).Order("id asc").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	var results []*models.Comment
	for i := range comments {
		results = append(results, &comments[i])
	}

	return results, nil
}
