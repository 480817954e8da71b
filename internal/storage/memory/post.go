package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/clock"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/models"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[uint]*models.Post
	nextId uint // Для хранения актуального ID (можно было использовать UUID)
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[uint]*models.Post),
		nextId: 1,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, title, subtitle, body, imgURL string) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.Title == title {
			return nil, post.ErrTitleTaken
		}
	}

	newPost := &models.Post{
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		ImgURL:   imgURL,
		Date:     clock.PostDate(clock.Now()),
		UserID:   userID,
	}
	newPost.ID = s.nextId
	newPost.CreatedAt = time.Now()
	s.nextId++

	s.posts[newPost.ID] = newPost
	return newPost, nil
}

func (s *PostMemoryStorage) GetPostById(id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getLocked(id)
}

func (s *PostMemoryStorage) getLocked(id string) (*models.Post, error) {
	idInt, err := strconv.Atoi(id)
	if err != nil {
		return nil, post.ErrNotFound
	}

	p, exists := s.posts[uint(idInt)]
	if !exists {
		return nil, post.ErrNotFound
	}

	return p, nil
}

func (s *PostMemoryStorage) GetAllPosts() ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*models.Post
	for _, p := range s.posts {
		posts = append(posts, p)
	}

	// map не упорядочен - сортируем по ID для стабильного списка
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

func (s *PostMemoryStorage) GetPostsByAuthor(userID uint) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*models.Post
	for _, p := range s.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

// UpdatePost перезаписывает поля поста. Проверки авторства нет намеренно:
// любой авторизованный пользователь может редактировать любой пост
func (s *PostMemoryStorage) UpdatePost(ctx context.Context, id, title, subtitle, body, imgURL string) error {
	_, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getLocked(id)
	if err != nil {
		return err
	}

	for _, other := range s.posts {
		if other.ID != p.ID && other.Title == title {
			return post.ErrTitleTaken
		}
	}

	p.Title = title
	p.Subtitle = subtitle
	p.Body = body
	p.ImgURL = imgURL
	return nil
}

func (s *PostMemoryStorage) DeletePostById(ctx context.Context, id string) error {
	_, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getLocked(id)
	if err != nil {
		return err
	}

	delete(s.posts, p.ID)
	return nil
}
