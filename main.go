package main

import (
	"log"

	"blogapp/auth"
	"blogapp/config"
	"blogapp/controllers"
	"blogapp/repository"
	"blogapp/router"
	"blogapp/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	if cfg.App.Secret == "" {
		log.Fatal("secret key is not configured")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	cache, err := config.InitRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	rabbitConn, rabbitCh, err := config.InitRabbit(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	if rabbitConn != nil {
		defer rabbitConn.Close()
	}

	tokens := auth.NewTokenIssuer(cfg.App.Secret)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	mailer := services.NewMailDispatcher(services.MailConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		From:     cfg.Mail.From,
		Password: cfg.Mail.Password,
	}, rabbitCh, cfg.RabbitMQ.Queue)
	if rabbitCh != nil {
		if err := mailer.StartWorker(); err != nil {
			log.Fatalf("Failed to start mail worker: %v", err)
		}
	}

	images := services.NewImageService(cfg.Image.ImgbbKey)
	userSvc := services.NewUserService(userRepo, tokens, mailer, cfg.App.BaseURL)
	postSvc := services.NewPostService(postRepo)
	commentSvc := services.NewCommentService(commentRepo, postRepo)
	likeSvc := services.NewLikeService(likeRepo, postRepo, commentRepo, cache)

	r := router.Setup(tokens, userRepo, router.Handlers{
		Auth:     controllers.NewAuthController(userSvc, tokens),
		Users:    controllers.NewUserController(userSvc, postSvc, images),
		Posts:    controllers.NewPostController(postSvc, commentSvc, likeSvc),
		Comments: controllers.NewCommentController(commentSvc),
		Likes:    controllers.NewLikeController(likeSvc),
	})

	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
