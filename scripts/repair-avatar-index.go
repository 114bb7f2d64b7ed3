package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/oripheon-api/internal/redis"
	"github.com/KirkDiggler/oripheon-api/internal/repositories/avatars"
)

func main() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client, err := redis.NewClient(addr, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	if err := redis.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", addr)
	fmt.Println("Comparing avatar blobs against the created index...")

	report, err := avatars.InspectRedisIndex(ctx, client)
	if err != nil {
		log.Fatal("Inspection failed:", err)
	}

	fmt.Printf("\nChecked %d avatars\n", report.Scanned)

	if report.Clean() {
		fmt.Println("Index is consistent!")
		return
	}

	printKeys("Missing from index", report.Unindexed)
	printKeys("Dangling index entries", report.Dangling)
	printKeys("Corrupted blobs (will be DELETED)", report.Corrupt)

	fmt.Print("\nApply these repairs? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	if err := avatars.RepairRedisIndex(ctx, client, report); err != nil {
		log.Fatal("Repair failed:", err)
	}
	fmt.Println("\nRepair complete!")
}

func printKeys(label string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Printf("\n%s (%d):\n", label, len(keys))
	for _, key := range keys {
		fmt.Printf("  - %s\n", key)
	}
}
