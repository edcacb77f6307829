package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"instructhub/internal/config"
	"instructhub/internal/database"
	"instructhub/internal/identity"
	"instructhub/internal/middleware"
	"instructhub/internal/modules/admin"
	"instructhub/internal/modules/completeness"
	"instructhub/internal/modules/document"
	"instructhub/internal/modules/provision"
	"instructhub/internal/modules/verification"
	jwtsvc "instructhub/internal/pkg/jwt"
	"instructhub/internal/repository"
	"instructhub/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var identities identity.Provider
	if cfg.IdentityURL != "" {
		identities = identity.NewHTTPProvider(cfg.IdentityURL, cfg.IdentityServiceKey)
	} else {
		log.Println("IDENTITY_URL is empty, using local identity provider")
		identities, err = identity.NewLocalProvider(db)
		if err != nil {
			log.Fatal(err)
		}
	}

	var objects storage.ObjectStore
	if cfg.StorageEndpoint != "" {
		objects, err = storage.NewS3Store(storage.S3Config{
			Endpoint:  cfg.StorageEndpoint,
			AccessKey: cfg.StorageAccessKey,
			SecretKey: cfg.StorageSecretKey,
			Bucket:    cfg.StorageBucket,
			UseSSL:    cfg.StorageUseSSL,
			PublicURL: cfg.StoragePublicURL,
		})
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("STORAGE_ENDPOINT is empty, using in-memory object store")
		objects = storage.NewMemoryStore()
	}

	profileRepo := repository.NewProfileRepository(db)
	instructorRepo := repository.NewInstructorProfileRepository(db)
	companyRepo := repository.NewCompanyProfileRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	provisionService := provision.NewService(identities, profileRepo, instructorRepo, companyRepo)
	provisionHandler := provision.NewHandler(provisionService)

	verificationService := verification.NewService(verificationRepo, profileRepo, instructorRepo, companyRepo)
	verificationHandler := verification.NewHandler(verificationService)

	documentService := document.NewService(documentRepo, objects)
	documentHandler := document.NewHandler(documentService)

	completenessService := completeness.NewService(profileRepo, instructorRepo, companyRepo, verificationRepo)
	completenessHandler := completeness.NewHandler(completenessService)

	adminService := admin.NewService(profileRepo, verificationRepo, documentRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		provisionHandler.RegisterPublicRoutes(v1)

		// authenticated users
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			verificationHandler.RegisterProtectedRoutes(protected)
			documentHandler.RegisterProtectedRoutes(protected)
			completenessHandler.RegisterProtectedRoutes(protected)
		}

		// admin only
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			provisionHandler.RegisterAdminRoutes(adminGroup)
			verificationHandler.RegisterAdminRoutes(adminGroup)
			documentHandler.RegisterAdminRoutes(adminGroup)
			adminHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
