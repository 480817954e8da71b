package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/clock"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/models"
)

type CommentMemoryStorage struct {
	mu          sync.Mutex
	comments    map[uint]*models.Comment
	nextID      uint
	postStorage post.PostStorage // Хранилище постов (внедрение зависимости (DI))
}

func NewCommentMemoryStorage(postStore post.PostStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments:    make(map[uint]*models.Comment),
		nextID:      1,
		postStorage: postStore,
	}
}

func (s *CommentMemoryStorage) CreateComment(ctx context.Context, postID, text string) (*models.Comment, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("comment text is empty")
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	curPost, err := s.postStorage.GetPostById(postID)
	if err != nil {
		return nil, post.ErrNotFound
	}

	comment := &models.Comment{
		Text:   text,
		Date:   clock.CommentDate(clock.Now()),
		PostID: curPost.ID,
		UserID: userID,
	}
	comment.ID = s.nextID
	comment.CreatedAt = time.Now()
	s.nextID++

	s.comments[comment.ID] = comment

	return comment, nil
}

func (s *CommentMemoryStorage) GetComments(postID string) ([]*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	curPost, err := s.postStorage.GetPostById(postID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, post.ErrNotFound
		}
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	var results []*models.Comment
	for _, c := range s.comments {
		if c.PostID == curPost.ID {
			results = append(results, c)
		}
	}

	// старые первыми
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	return results, nil
}
