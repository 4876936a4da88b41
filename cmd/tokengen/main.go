package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/jwt"
)

// tokengen issues a company-scoped access token for API clients and smoke
// tests. Reads the same JWT settings as the server.
func main() {
	companyID := flag.String("company", "", "company id to scope the token to")
	flag.Parse()

	if *companyID == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -company <company-id>")
		os.Exit(1)
	}

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET_KEY is required")
		os.Exit(1)
	}
	expiration := os.Getenv("JWT_ACCESS_EXPIRATION_TIME")
	if expiration == "" {
		expiration = "1h"
	}

	jwtService := jwt.NewJWTService(secret, expiration)
	token, expiresAt, err := jwtService.GenerateToken(*companyID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintln(os.Stderr, "expires:", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
