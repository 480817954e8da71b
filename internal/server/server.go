package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/comment"
	"github.com/VitaminP8/bloggery/internal/dedup"
	"github.com/VitaminP8/bloggery/internal/mail"
	"github.com/VitaminP8/bloggery/internal/motivation"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/internal/user"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server связывает хранилища, почту и скрейпер с HTTP-маршрутами
type Server struct {
	users    user.UserStorage
	posts    post.PostStorage
	comments comment.CommentStorage
	mailer   mail.Sender
	quotes   motivation.Source
	guard    *dedup.Guard
}

func New(users user.UserStorage, posts post.PostStorage, comments comment.CommentStorage, mailer mail.Sender, quotes motivation.Source) *Server {
	return &Server{
		users:    users,
		posts:    posts,
		comments: comments,
		mailer:   mailer,
		quotes:   quotes,
		guard:    dedup.NewGuard(30 * time.Minute),
	}
}

// Routes собирает gin-роутер со всеми маршрутами блога
func (s *Server) Routes() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))
	r.Use(auth.SessionMiddleware())

	r.GET("/", s.index)
	r.GET("/about", s.about)

	r.GET("/register", s.showRegister)
	r.POST("/register", s.register)
	r.GET("/login", s.showLogin)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)

	r.GET("/post/:id", s.showPost)
	r.POST("/post/:id", s.addComment)

	// создание/редактирование - редирект на логин, удаление - жесткий 403
	// (так разводил эти случаи исходный блог)
	r.GET("/new-post", s.loginRequired, s.showNewPost)
	r.POST("/new-post", s.loginRequired, s.createPost)
	r.GET("/edit-post/:id", s.loginRequired, s.showEditPost)
	r.POST("/edit-post/:id", s.loginRequired, s.updatePost)
	r.GET("/delete/:id", s.authRequired, s.deletePost)

	r.GET("/contact", s.showContact)
	r.POST("/contact", s.submitContact)

	r.GET("/pixel-motivation", s.pixelMotivation)

	// /:name/dashboard конфликтует со статическими сегментами в дереве
	// маршрутов gin, поэтому разбирается в NoRoute вместе со страницей 404
	r.NoRoute(s.dashboardOrNotFound)

	return r
}

// loginRequired пускает дальше только авторизованных, остальных - на логин
func (s *Server) loginRequired(c *gin.Context) {
	if !auth.IsAuthenticated(c) {
		setFlash(c, "You need to login or register first.")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// authRequired отвечает 403 неавторизованным (guard удаления)
func (s *Server) authRequired(c *gin.Context) {
	if !auth.IsAuthenticated(c) {
		c.String(http.StatusForbidden, "Unauthorized access")
		c.Abort()
		return
	}
	c.Next()
}
