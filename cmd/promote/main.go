// Command promote changes a user's role by email address. It is used to
// grant the first ADMIN or REVIEWER of a company.
//
// Usage:
//
//	promote --email=user@example.com [--role=REVIEWER]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	roleFlag := flag.String("role", string(domain.UserRoleAdmin), "target role: ADMIN, REVIEWER or EDITOR")
	flag.Parse()

	role := domain.UserRole(strings.ToUpper(strings.TrimSpace(*roleFlag)))
	if *email == "" || !role.IsValid() {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=ADMIN|REVIEWER|EDITOR]")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		"UPDATE users SET role = $1, updated_at = now() WHERE email = $2 AND role != $1",
		role.String(), *email,
	)
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No user found with email %q, or already %s.\n", *email, role)
		os.Exit(1)
	}

	fmt.Printf("User %q is now %s.\n", *email, role)
}
