package server

import (
	"log"
	"net/http"

	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/clock"
	"github.com/VitaminP8/bloggery/internal/motivation"
	"github.com/gin-gonic/gin"
)

// pixelMotivation — страница "мотивации дня". Все источники best-effort:
// любой сбой заменяется запасной цитатой, страница рендерится всегда
func (s *Server) pixelMotivation(c *gin.Context) {
	quote := motivation.StockQuote
	var imgLink, bgLink string

	if s.quotes != nil {
		if q, err := s.quotes.QuoteOfTheDay(); err == nil {
			quote = q
		} else {
			log.Printf("quote of the day unavailable: %v", err)
		}

		if link, err := s.quotes.ImageOfTheDay(); err == nil {
			imgLink = link
		} else {
			log.Printf("image of the day unavailable: %v", err)
		}

		if link, err := s.quotes.BackgroundImage(); err == nil {
			bgLink = link
		} else {
			log.Printf("background image unavailable: %v", err)
		}
	}

	now := clock.Now()
	c.HTML(http.StatusOK, "pixel.tmpl", gin.H{
		"Title":      "Quote of the Day",
		"Quote":      quote.Text,
		"Author":     quote.Author,
		"Today":      clock.Weekday(now),
		"TodayBrief": clock.BriefDate(now),
		"ImgLink":    imgLink,
		"BgLink":     bgLink,
		"LoggedIn":   auth.IsAuthenticated(c),
	})
}
