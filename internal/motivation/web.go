package motivation

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/VitaminP8/bloggery/internal/clock"
	"github.com/VitaminP8/bloggery/internal/config"
	"github.com/gocolly/colly/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// WebSource — живая реализация Source поверх сторонних сайтов.
// Цепочка источников повторяет исходный блог: JSON API цитат с фолбэком
// на скрейпинг, страница картинок с фолбэком на второй сайт.
type WebSource struct {
	client           *http.Client
	quoteAPIURL      string
	fallbackQuoteURL string
	imagePageURL     string
	fallbackImageURL string
	backgroundURL    string
	imageLog         *ImageLog
	timeout          time.Duration
}

func NewWebSource(cfg config.ScraperConfig) *WebSource {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebSource{
		client:           &http.Client{Timeout: timeout},
		quoteAPIURL:      cfg.QuoteAPIURL,
		fallbackQuoteURL: cfg.FallbackQuoteURL,
		imagePageURL:     cfg.ImagePageURL,
		fallbackImageURL: cfg.FallbackImageURL,
		backgroundURL:    cfg.BackgroundURL,
		imageLog:         NewImageLog(cfg.ImageLogPath),
		timeout:          timeout,
	}
}

// newCollector создает colly-коллектор с таймаутом и вежливым rate limit
func (s *WebSource) newCollector() *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
	)
	c.SetRequestTimeout(s.timeout)
	c.Limit(&colly.LimitRule{
		DomainGlob: "*",
		Delay:      1 * time.Second,
	})
	return c
}

func (s *WebSource) QuoteOfTheDay() (Quote, error) {
	quote, err := s.quoteFromAPI()
	if err == nil {
		return quote, nil
	}
	log.Printf("quote API failed, falling back to scraping: %v", err)

	return s.quoteFromFallbackPage()
}

// quoteFromAPI - основной источник, JSON вида [{"q": "...", "a": "..."}]
func (s *WebSource) quoteFromAPI() (Quote, error) {
	req, err := http.NewRequest(http.MethodGet, s.quoteAPIURL, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("could not build quote request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("could not fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var payload []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Quote{}, fmt.Errorf("could not decode quote response: %w", err)
	}
	if len(payload) == 0 || payload[0].Q == "" {
		return Quote{}, errors.New("quote API returned no quotes")
	}

	return Quote{Text: payload[0].Q, Author: payload[0].A}, nil
}

func (s *WebSource) quoteFromFallbackPage() (Quote, error) {
	var quote Quote

	c := s.newCollector()
	c.OnHTML(`span[itemprop="name"]`, func(e *colly.HTMLElement) {
		if quote.Author == "" {
			quote.Author = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("p.lead", func(e *colly.HTMLElement) {
		if quote.Text == "" {
			quote.Text = strings.TrimSpace(e.Text)
		}
	})

	if err := c.Visit(s.fallbackQuoteURL); err != nil {
		return Quote{}, fmt.Errorf("could not scrape fallback quote page: %w", err)
	}
	if quote.Text == "" {
		return Quote{}, errors.New("fallback quote page had no quote")
	}

	return quote, nil
}

// ImageOfTheDay выбирает картинку, не показанную в предыдущие дни.
// Если последний выбор делался сегодня - возвращаем его же (одна картинка
// в день), иначе скрейпим источник и дописываем выбор в журнал
func (s *WebSource) ImageOfTheDay() (string, error) {
	today := clock.LogDate(clock.Now())

	last, ok, err := s.imageLog.LastRecord()
	if err != nil {
		return "", err
	}
	if ok && last.Date == today {
		return last.Link, nil
	}

	link, err := s.pickFreshImage(today)
	if err == nil {
		return link, nil
	}
	log.Printf("image page failed, falling back: %v", err)

	return s.imageFromFallbackPage()
}

func (s *WebSource) pickFreshImage(today string) (string, error) {
	var links []string

	c := s.newCollector()
	c.OnHTML("div.wp-block-image img", func(e *colly.HTMLElement) {
		src := e.Attr("src")
		if src != "" {
			links = append(links, e.Request.AbsoluteURL(src))
		}
	})

	if err := c.Visit(s.imagePageURL); err != nil {
		return "", fmt.Errorf("could not scrape image page: %w", err)
	}
	if len(links) == 0 {
		return "", errors.New("image page had no images")
	}

	records, err := s.imageLog.Records()
	if err != nil {
		return "", err
	}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		seen[r.Link] = true
	}

	var fresh []string
	for _, link := range links {
		if !seen[link] {
			fresh = append(fresh, link)
		}
	}
	// все картинки уже были показаны - начинаем круг заново
	if len(fresh) == 0 {
		fresh = links
	}

	choice := fresh[rand.Intn(len(fresh))]
	if err := s.imageLog.Append(choice, today); err != nil {
		return "", err
	}

	return choice, nil
}

func (s *WebSource) imageFromFallbackPage() (string, error) {
	var links []string

	base, err := url.Parse(s.fallbackImageURL)
	if err != nil {
		return "", fmt.Errorf("invalid fallback image URL: %w", err)
	}

	c := s.newCollector()
	c.OnHTML("div.media img", func(e *colly.HTMLElement) {
		src := e.Attr("data-src")
		if src == "" {
			src = e.Attr("src")
		}
		if src == "" {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})

	if err := c.Visit(s.fallbackImageURL); err != nil {
		return "", fmt.Errorf("could not scrape fallback image page: %w", err)
	}
	if len(links) == 0 {
		return "", errors.New("fallback image page had no images")
	}

	return links[rand.Intn(len(links))], nil
}

func (s *WebSource) BackgroundImage() (string, error) {
	var links []string

	c := s.newCollector()
	c.OnHTML("img", func(e *colly.HTMLElement) {
		src := e.Attr("src")
		if src != "" {
			links = append(links, e.Request.AbsoluteURL(src))
		}
	})

	if err := c.Visit(s.backgroundURL); err != nil {
		return "", fmt.Errorf("could not scrape background page: %w", err)
	}
	if len(links) == 0 {
		return "", errors.New("background page had no images")
	}

	return links[rand.Intn(len(links))], nil
}
