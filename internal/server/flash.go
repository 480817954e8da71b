package server

import "github.com/gin-gonic/gin"

const flashCookie = "blog_flash"

// setFlash сохраняет одноразовое сообщение для следующей страницы
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 300, "/", "", false, true)
}

// takeFlash читает и сразу гасит flash-сообщение
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
