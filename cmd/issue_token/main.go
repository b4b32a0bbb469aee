// Command issue_token prints a bearer token for an operator of the certificate API.
// It signs with the JWT_SECRET the server is configured with.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/certificate_registry/internal/platform/config"
	"github.com/SscSPs/certificate_registry/internal/utils"
)

func main() {
	subject := flag.String("subject", "", "operator identifier stored as the token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	issuer := flag.String("issuer", "certificate-registry", "token issuer")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*subject, cfg.JWTSecret, *ttl, *issuer)
	if err != nil {
		slog.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
