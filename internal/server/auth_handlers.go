package server

import (
	"errors"
	"net/http"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/user"
	"github.com/gin-gonic/gin"
)

func (s *Server) showRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{
		"Flash":    takeFlash(c),
		"LoggedIn": auth.IsAuthenticated(c),
	})
}

func (s *Server) register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if name == "" || email == "" || password == "" {
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"Flash": "All fields are required.",
		})
		return
	}

	_, err := s.users.RegisterUser(name, email, password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			// повторная регистрация не создает второго пользователя
			setFlash(c, "You have already signed up with that email, login instead.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"Flash": "Could not create your account, please try again.",
		})
		return
	}

	// сразу авторизуем нового пользователя
	token, err := s.users.LoginUser(email, password)
	if err != nil {
		setFlash(c, "Account created, please login.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	auth.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Flash":    takeFlash(c),
		"LoggedIn": auth.IsAuthenticated(c),
	})
}

func (s *Server) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := s.users.LoginUser(email, password)
	if err != nil {
		// сообщения различимы намеренно - поведение исходного блога
		// (менее безопасное, но явное)
		switch {
		case errors.Is(err, user.ErrEmailNotFound):
			setFlash(c, "The email does not exist, please try again.")
		case errors.Is(err, user.ErrWrongPassword):
			setFlash(c, "Password incorrect, please try again!")
		default:
			setFlash(c, "Could not log you in, please try again.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	auth.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

// logout сбрасывает сессию безусловно
func (s *Server) logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
