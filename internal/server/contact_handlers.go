package server

import (
	"net/http"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/mail"
	"github.com/gin-gonic/gin"
)

const contactScope = "contact"

func (s *Server) showContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", gin.H{
		"Flash":     takeFlash(c),
		"FormToken": s.guard.Issue(contactScope),
		"LoggedIn":  auth.IsAuthenticated(c),
	})
}

func (s *Server) submitContact(c *gin.Context) {
	msg := mail.Message{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Phone: c.PostForm("phone"),
		Body:  c.PostForm("message"),
	}

	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		c.HTML(http.StatusOK, "contact.tmpl", gin.H{
			"Flash":     "Name, email and message are required.",
			"FormToken": s.guard.Issue(contactScope),
			"LoggedIn":  auth.IsAuthenticated(c),
		})
		return
	}

	// двойная отправка формы приходит с уже погашенным токеном
	if !s.guard.Consume(contactScope, c.PostForm("form_token")) {
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	// сбой внешнего relay - это flash, а не фатальная ошибка запроса
	if err := s.mailer.Send(msg); err != nil {
		c.HTML(http.StatusOK, "contact.tmpl", gin.H{
			"Flash":     "Could not send your message, please try again later.",
			"FormToken": s.guard.Issue(contactScope),
			"LoggedIn":  auth.IsAuthenticated(c),
		})
		return
	}

	c.HTML(http.StatusOK, "contact.tmpl", gin.H{
		"Posted":   true,
		"LoggedIn": auth.IsAuthenticated(c),
	})
}
