// Command bootstrap creates the initial super_admin account. It is a
// one-time setup step: when any admin already exists it exits without
// touching the directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tayaudrey222/yumstation/config"
	"github.com/tayaudrey222/yumstation/internal/auth"
	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/store"

	"github.com/google/uuid"
)

func main() {
	email := flag.String("email", "", "super admin email")
	password := flag.String("password", "", "super admin password (min 8 characters)")
	flag.Parse()

	*email = strings.ToLower(strings.TrimSpace(*email))
	if *email == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "usage: bootstrap -email owner@example.com -password <min 8 chars>")
		os.Exit(2)
	}

	cfg := config.Load()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.AdminUser{
		UID:          uuid.New().String(),
		Email:        *email,
		PasswordHash: hash,
	}

	if err := db.CreateSuperAdmin(context.Background(), admin); err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	log.Printf("Super admin %s created (uid %s)", admin.Email, admin.UID)
}
