// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"log"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	tokenClientID     string
	tokenClientSecret string
	tokenEndpoint     string
	tokenIssuerURL    string
	tokenScopes       []string
	tokenLocal        bool
)

// tokenCmd fetches an access token via the client credentials grant so the
// API can be exercised without a browser login. The token URL is either given
// directly or resolved through OIDC discovery on the issuer. With --local it
// instead mints a throwaway RS256 token carrying the fixed dev principal, for
// use against a server running with AUTH_MODE=local_fake.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the campaign API",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if tokenLocal {
			token, err := mintLocalToken()
			if err != nil {
				log.Fatalf("Failed to mint local token: %v", err)
			}
			fmt.Println(token)
			return
		}

		if tokenClientID == "" || tokenClientSecret == "" {
			log.Fatal("--client-id and --client-secret are required without --local")
		}

		if tokenEndpoint == "" {
			if tokenIssuerURL == "" {
				log.Fatal("Either --token-url or --issuer-url must be provided")
			}

			provider, err := oidc.NewProvider(ctx, tokenIssuerURL)
			if err != nil {
				log.Fatalf("Failed to create OIDC provider from issuer: %v", err)
			}
			tokenEndpoint = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     tokenClientID,
			ClientSecret: tokenClientSecret,
			TokenURL:     tokenEndpoint,
			Scopes:       tokenScopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			log.Fatalf("Failed to get token: %v", err)
		}

		fmt.Println(token.AccessToken)
	},
}

// mintLocalToken signs a short-lived token with an ephemeral key. The local
// fake verifier does not check signatures; the claims mirror its principal so
// the token also reads sensibly when decoded by hand.
func mintLocalToken() (string, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":                "local-dev-user",
		"oid":                "local-dev-oid",
		"iss":                "local-fake",
		"aud":                "local-fake",
		"exp":                now.Add(time.Hour).Unix(),
		"iat":                now.Unix(),
		"nbf":                now.Unix(),
		"name":               "Local Dev User",
		"preferred_username": "local-dev-user",
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&tokenClientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenEndpoint, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&tokenIssuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&tokenScopes, "scopes", []string{"api://campaign-service/.default"}, "Scopes (comma-separated)")
	tokenCmd.Flags().BoolVar(&tokenLocal, "local", false, "Mint a token for a local_fake server instead of contacting an IdP")
}
