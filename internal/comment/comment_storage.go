package comment

import (
	"context"

	"github.com/VitaminP8/bloggery/models"
)

type CommentStorage interface {
	CreateComment(ctx context.Context, postID, text string) (*models.Comment, error)
	// GetComments возвращает комментарии поста, старые первыми
	GetComments(postID string) ([]*models.Comment, error)
}
