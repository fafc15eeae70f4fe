package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/api"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/mailer"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/middleware"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/services"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/storage"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	st, err := store.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize record store: %v", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Printf("ERROR: [Main] Failed to close record store: %v", err)
		}
	}()

	uploads, err := storage.New(ctx, cfg.Upload)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize upload storage: %v", err)
	}

	mail := mailer.NewSMTP(cfg.Mail, cfg.Admin.Email)
	log.Println("INFO: [Main] Collaborators initialized.")

	authService := services.NewAuthService(st, st, cfg.Admin, mail)
	blogService := services.NewBlogService(st, mail)
	contentService := services.NewContentService(st, mail)
	log.Println("INFO: [Main] Services initialized.")

	apiHandler := api.NewAPIHandler(st, authService, blogService, contentService, mail, uploads, cfg)
	log.Println("INFO: [Main] API Handler initialized.")

	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	r.Use(middleware.Sessions(cfg.Server.SessionSecret))
	r.Use(middleware.WithPrincipal())
	log.Println("INFO: [Main] Middlewares registered.")

	api.RegisterRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	addr := ":" + cfg.Server.Port
	log.Printf("INFO: [Main] Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("FATAL: [Main] Server failed: %v", err)
	}
}
