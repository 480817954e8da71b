package server

import (
	"html/template"
	"net/http"

	"github.com/VitaminP8/bloggery/models"
	"github.com/gin-gonic/gin"
)

type postView struct {
	ID         uint
	Title      string
	Subtitle   string
	Date       string
	ImgURL     string
	AuthorName string
	Body       template.HTML // тело поста - rich text из редактора
}

type commentView struct {
	Text       string
	Date       string
	AuthorName string
}

func (s *Server) postView(p *models.Post) postView {
	return postView{
		ID:         p.ID,
		Title:      p.Title,
		Subtitle:   p.Subtitle,
		Date:       p.Date,
		ImgURL:     p.ImgURL,
		AuthorName: s.authorName(p.UserID),
		Body:       template.HTML(p.Body),
	}
}

func (s *Server) postViews(posts []*models.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, s.postView(p))
	}
	return views
}

func (s *Server) commentViews(comments []*models.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, commentView{
			Text:       c.Text,
			Date:       c.Date,
			AuthorName: s.authorName(c.UserID),
		})
	}
	return views
}

func (s *Server) authorName(userID uint) string {
	u, err := s.users.GetUserById(userID)
	if err != nil {
		return "unknown"
	}
	return u.Name
}

// notFound рендерит страницу 404 (исходный блог падал бы на отсутствующей
// записи - здесь явный not-found ответ)
func (s *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{})
}
