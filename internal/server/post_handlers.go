package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/gin-gonic/gin"
)

func (s *Server) index(c *gin.Context) {
	posts, err := s.posts.GetAllPosts()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.tmpl", gin.H{
			"Flash": "Could not load posts.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Posts":    s.postViews(posts),
		"Flash":    takeFlash(c),
		"LoggedIn": auth.IsAuthenticated(c),
	})
}

func (s *Server) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", gin.H{
		"LoggedIn": auth.IsAuthenticated(c),
	})
}

func (s *Server) showPost(c *gin.Context) {
	id := c.Param("id")

	p, err := s.posts.GetPostById(id)
	if err != nil {
		s.notFound(c)
		return
	}

	comments, err := s.comments.GetComments(id)
	if err != nil {
		s.notFound(c)
		return
	}

	data := gin.H{
		"Post":     s.postView(p),
		"Comments": s.commentViews(comments),
		"Flash":    takeFlash(c),
		"LoggedIn": auth.IsAuthenticated(c),
	}

	// одноразовый токен формы комментария - защита от двойной отправки,
	// привязанная к сессии и посту (не глобальная, как в исходном блоге)
	if userID, err := auth.CurrentUserID(c); err == nil {
		data["FormToken"] = s.guard.Issue(commentScope(id, userID))
	}

	c.HTML(http.StatusOK, "post.tmpl", data)
}

func commentScope(postID string, userID uint) string {
	return fmt.Sprintf("comment:%s:%d", postID, userID)
}

func (s *Server) addComment(c *gin.Context) {
	id := c.Param("id")

	userID, err := auth.CurrentUserID(c)
	if err != nil {
		setFlash(c, "You need to login or register to comment.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if _, err := s.posts.GetPostById(id); err != nil {
		s.notFound(c)
		return
	}

	text := c.PostForm("text")
	if strings.TrimSpace(text) == "" {
		c.Redirect(http.StatusFound, "/post/"+id)
		return
	}

	// погашенный или чужой токен - двойная отправка, молча уходим назад
	if !s.guard.Consume(commentScope(id, userID), c.PostForm("form_token")) {
		c.Redirect(http.StatusFound, "/post/"+id)
		return
	}

	if _, err := s.comments.CreateComment(c.Request.Context(), id, text); err != nil {
		setFlash(c, "Could not add your comment.")
	}

	c.Redirect(http.StatusFound, "/post/"+id)
}

func (s *Server) showNewPost(c *gin.Context) {
	c.HTML(http.StatusOK, "make-post.tmpl", gin.H{
		"Heading":  "New Post",
		"Flash":    takeFlash(c),
		"LoggedIn": true,
	})
}

func (s *Server) createPost(c *gin.Context) {
	title := c.PostForm("title")
	subtitle := c.PostForm("subtitle")
	body := c.PostForm("body")
	imgURL := c.PostForm("img_url")

	if title == "" || body == "" {
		c.HTML(http.StatusOK, "make-post.tmpl", gin.H{
			"Heading":  "New Post",
			"Flash":    "Title and body are required.",
			"Title":    title,
			"Subtitle": subtitle,
			"Body":     body,
			"ImgURL":   imgURL,
			"LoggedIn": true,
		})
		return
	}

	_, err := s.posts.CreatePost(c.Request.Context(), title, subtitle, body, imgURL)
	if err != nil {
		flash := "Could not create the post."
		if errors.Is(err, post.ErrTitleTaken) {
			flash = "A post with that title already exists."
		}
		c.HTML(http.StatusOK, "make-post.tmpl", gin.H{
			"Heading":  "New Post",
			"Flash":    flash,
			"Title":    title,
			"Subtitle": subtitle,
			"Body":     body,
			"ImgURL":   imgURL,
			"LoggedIn": true,
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) showEditPost(c *gin.Context) {
	id := c.Param("id")

	p, err := s.posts.GetPostById(id)
	if err != nil {
		s.notFound(c)
		return
	}

	// форма предзаполняется текущими полями поста
	c.HTML(http.StatusOK, "make-post.tmpl", gin.H{
		"Heading":  "Edit Post",
		"EditID":   p.ID,
		"Flash":    takeFlash(c),
		"Title":    p.Title,
		"Subtitle": p.Subtitle,
		"Body":     p.Body,
		"ImgURL":   p.ImgURL,
		"LoggedIn": true,
	})
}

func (s *Server) updatePost(c *gin.Context) {
	id := c.Param("id")

	title := c.PostForm("title")
	subtitle := c.PostForm("subtitle")
	body := c.PostForm("body")
	imgURL := c.PostForm("img_url")

	err := s.posts.UpdatePost(c.Request.Context(), id, title, subtitle, body, imgURL)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			s.notFound(c)
			return
		}
		flash := "Could not update the post."
		if errors.Is(err, post.ErrTitleTaken) {
			flash = "A post with that title already exists."
		}
		c.HTML(http.StatusOK, "make-post.tmpl", gin.H{
			"Heading":  "Edit Post",
			"EditID":   id,
			"Flash":    flash,
			"Title":    title,
			"Subtitle": subtitle,
			"Body":     body,
			"ImgURL":   imgURL,
			"LoggedIn": true,
		})
		return
	}

	c.Redirect(http.StatusFound, "/post/"+id)
}

func (s *Server) deletePost(c *gin.Context) {
	id := c.Param("id")

	err := s.posts.DeletePostById(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			s.notFound(c)
			return
		}
		setFlash(c, "Could not delete the post.")
	}

	c.Redirect(http.StatusFound, "/")
}

// dashboardOrNotFound разбирает /<name>/dashboard (он не помещается в дерево
// маршрутов gin рядом со статическими путями), все остальное - страница 404
func (s *Server) dashboardOrNotFound(c *gin.Context) {
	segs := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")
	if len(segs) != 2 || segs[1] != "dashboard" {
		s.notFound(c)
		return
	}

	// исходный блог проверял здесь несуществующий атрибут пользователя,
	// и "авторизованная" ветка была недостижима; тут проверка явная
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := segs[0]
	owner, err := s.users.GetUserByName(name)
	if err != nil {
		s.notFound(c)
		return
	}

	posts, err := s.posts.GetPostsByAuthor(owner.ID)
	if err != nil {
		s.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Name":                 name,
		"Posts":                s.postViews(posts),
		"CurrentUserDashboard": owner.ID == userID,
		"IsAdmin":              auth.IsSuperUser(userID),
		"LoggedIn":             true,
	})
}
