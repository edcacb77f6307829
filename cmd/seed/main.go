package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"instructhub/internal/database"
	"instructhub/internal/domain"
	"instructhub/internal/identity"
	"instructhub/internal/modules/provision"
	"instructhub/internal/repository"
)

// Seeds the first admin account through the provisioning saga, using the
// local identity provider. Safe to re-run: a duplicate email is a no-op.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "instructhub.db"
	}
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	identities, err := identity.NewLocalProvider(db)
	if err != nil {
		log.Fatal(err)
	}

	svc := provision.NewService(
		identities,
		repository.NewProfileRepository(db),
		repository.NewInstructorProfileRepository(db),
		repository.NewCompanyProfileRepository(db),
	)

	id, err := svc.Provision(context.Background(), email, password, "Administrator", domain.UserTypeAdmin)
	if err != nil {
		if errors.Is(err, identity.ErrDuplicateEmail) {
			log.Println("admin account already exists, nothing to do")
			return
		}
		log.Fatal("seed failed:", err)
	}

	log.Println("admin account created:", id.ID)
}
