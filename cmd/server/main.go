package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/VitaminP8/bloggery/internal/comment"
	"github.com/VitaminP8/bloggery/internal/config"
	"github.com/VitaminP8/bloggery/internal/mail"
	"github.com/VitaminP8/bloggery/internal/motivation"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/internal/server"
	"github.com/VitaminP8/bloggery/internal/storage/memory"
	"github.com/VitaminP8/bloggery/internal/storage/postgres"
	"github.com/VitaminP8/bloggery/internal/user"
	"github.com/VitaminP8/bloggery/models"
)

func main() {
	storageType := flag.String("storage", "", "Тип хранилища: memory или postgres (по умолчанию из конфига)")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if *storageType == "" {
		*storageType = cfg.Storage.Type
	}

	var postStore post.PostStorage
	var commentStore comment.CommentStorage
	var userStore user.UserStorage

	switch *storageType {
	case "postgres":
		err := postgres.InitDB()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		err = postgres.DB.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}).Error
		if err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		postStore = postgres.NewPostPostgresStorage()
		commentStore = postgres.NewCommentPostgresStorage()
		userStore = postgres.NewUserPostgresStorage()

	case "memory":
		log.Println("Используется in-memory хранилище")
		postStore = memory.NewPostMemoryStorage()
		commentStore = memory.NewCommentMemoryStorage(postStore)
		userStore = memory.NewUserMemoryStorage()

	default:
		log.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	mailer := mail.NewSMTPSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Email, cfg.Mail.Password)
	quotes := motivation.NewWebSource(cfg.Scraper)

	srv := server.New(userStore, postStore, commentStore, mailer, quotes)

	// HTTP сервер
	httpServer := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: srv.Routes(),
	}

	// запуск HTTP сервера
	go func() {
		log.Printf("Сервер запущен на http://%s/", httpServer.Addr)
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // ждет сигнал

	log.Println("Завершение...")

	if *storageType == "postgres" {
		postgres.CloseDB()
	}

	if err := httpServer.Shutdown(context.Background()); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}
