package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/naufalhakim/hr-management/internal/store"
	"github.com/naufalhakim/hr-management/internal/user"
	userMongo "github.com/naufalhakim/hr-management/internal/user/mongodb"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the admin account",
	Long:  `Create the initial ADMIN account if it does not exist. The default password is a fixed known credential and must be rotated before any real deployment.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		mongo, err := store.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
		if err != nil {
			log.Fatalf("failed to connect to record store: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		defer mongo.Close(ctx)

		users, err := userMongo.NewUserRepository(ctx, mongo)
		if err != nil {
			log.Fatalf("failed to initialize user repository: %v", err)
		}

		if _, err := users.GetByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
			fmt.Println("admin user already exists:", cfg.Seed.AdminEmail)
			return
		} else if !errors.Is(err, user.ErrNotFound) {
			log.Fatalf("failed to look up admin user: %v", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		admin := &user.User{
			ID:           uuid.NewString(),
			Email:        cfg.Seed.AdminEmail,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
			FirstName:    "Admin",
			LastName:     "User",
			CreatedAt:    time.Now(),
		}

		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}

		fmt.Println("Seeded admin user:", cfg.Seed.AdminEmail)
	},
}
