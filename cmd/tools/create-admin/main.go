// Command create-admin bootstraps an administrator account. Registration
// over the API always creates user-tier accounts, so the first admin has
// to be provisioned out of band.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceylontrip/ceylontrip/internal/config"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/logger"
	"github.com/ceylontrip/ceylontrip/internal/storage/pg"
)

func main() {
	var configFolder, email, password, firstName, lastName string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&email, "email", "", "admin email (required)")
	flag.StringVar(&password, "password", "", "admin password (required, min 6 chars)")
	flag.StringVar(&firstName, "first_name", "Admin", "admin first name")
	flag.StringVar(&lastName, "last_name", "User", "admin last name")
	flag.Parse()

	if email == "" || len(password) < 6 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}

	admin := domain.User{
		Id:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.ToLower(email),
		PassHash:  string(passHash),
		Role:      domain.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := storage.SaveUser(admin); err != nil {
		fmt.Fprintln(os.Stderr, "failed to create admin:", err)
		os.Exit(1)
	}
	fmt.Printf("admin account created: %s (%s)\n", admin.Email, admin.Id)
}
