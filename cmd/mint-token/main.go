// Command mint-token issues a signed access token for a team or for staff.
//
// Usage:
//
//	mint-token                 issue a staff token
//	mint-token --team <uuid>   issue a token for the given team
//
// Requires AUTH_JWT_SECRET to be set. AUTH_JWT_ISSUER and AUTH_TOKEN_TTL
// are optional and default to the server's defaults.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/auth"
)

func main() {
	teamFlag := flag.String("team", "", "team UUID to issue a token for (omit for a staff token)")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}

	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "marketstage"
	}

	ttl := 72 * time.Hour
	if raw := os.Getenv("AUTH_TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("parse AUTH_TOKEN_TTL: %v", err)
		}
		ttl = parsed
	}

	tokens := auth.NewTokenManager(secret, issuer, ttl)

	var (
		token string
		err   error
	)
	if *teamFlag != "" {
		teamID, parseErr := uuid.Parse(*teamFlag)
		if parseErr != nil {
			log.Fatalf("parse team id: %v", parseErr)
		}
		token, err = tokens.GenerateTeamToken(teamID)
	} else {
		token, err = tokens.GenerateStaffToken()
	}
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
