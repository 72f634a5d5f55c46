package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/ordernotify/internal/service"
	"github.com/jafarshop/ordernotify/pkg/errors"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/preview/main.go <order.json> [storeTag]")
		fmt.Println("Example: go run cmd/preview/main.go internal/service/testdata/shopify_order.json SH")
		os.Exit(1)
	}

	orderFile := os.Args[1]
	storeTag := ""
	if len(os.Args) > 2 {
		storeTag = os.Args[2]
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	raw, err := os.ReadFile(orderFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read order file: %v\n", err)
		os.Exit(1)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var body map[string]interface{}
	if err := decoder.Decode(&body); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse order file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("🔍 Previewing order from: %s\n\n", orderFile)

	prepared, err := service.Prepare(service.NotificationRequest{
		Body:          body,
		QueryStoreTag: storeTag,
	})
	if err != nil {
		if e, ok := err.(*errors.ErrInvalidPhone); ok {
			fmt.Printf("❌ Invalid phone: input=%v e164=%q digits=%q\n", e.Input, e.E164, e.Digits)
			os.Exit(1)
		}
		logger.Fatal("Failed to prepare notification", zap.Error(err))
	}

	fmt.Printf("Store: %s\n", prepared.StoreTag)
	fmt.Printf("Source: %s\n", prepared.Source)
	fmt.Printf("Country: %s\n", prepared.Order.Country)
	fmt.Printf("Total: %s\n", prepared.Pricing.TotalText)

	out, err := json.MarshalIndent(prepared.Payload, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode payload", zap.Error(err))
	}

	fmt.Printf("\nPayload (not sent):\n%s\n", out)
}
