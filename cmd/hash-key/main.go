package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/hash-key/main.go <webhook-key>")
		fmt.Println("Example: go run cmd/hash-key/main.go \"eq-store-webhook-key-12345\"")
		os.Exit(1)
	}

	webhookKey := os.Args[1]

	// Hash the webhook key
	keyHash, err := bcrypt.GenerateFromPassword([]byte(webhookKey), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash webhook key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Webhook key hashed successfully!\n\n")
	fmt.Printf("WEBHOOK_KEY_HASH=%s\n", string(keyHash))
	fmt.Printf("\n⚠️  IMPORTANT: Store the plain key only in the calling store's webhook settings.\n")
	fmt.Printf("\nSend it with every webhook call in one of these headers:\n")
	fmt.Printf("X-Webhook-Key: %s\n", webhookKey)
	fmt.Printf("Authorization: Bearer %s\n", webhookKey)
}
