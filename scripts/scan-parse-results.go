// Command scan-parse-results reports stored parse results that no longer
// decode, optionally deleting them
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	parseresults "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results"
)

func main() {
	deleteBad := flag.Bool("delete", false, "Delete records that fail to decode")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)

	iter := client.Scan(ctx, 0, parseresults.KeyPattern, 0).Iterator()

	var badKeys []string
	var checked int

	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record parseresults.Record
		switch err := json.Unmarshal([]byte(data), &record); {
		case err != nil:
			fmt.Printf("✗ Undecodable JSON in %s: %v\n", key, err)
			badKeys = append(badKeys, key)
		case record.Result == nil:
			fmt.Printf("✗ Missing result in %s\n", key)
			badKeys = append(badKeys, key)
		case len(record.Result.Ledger) == 0:
			fmt.Printf("✗ Empty ledger in %s\n", key)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d records, found %d bad\n", checked, len(badKeys))
	if len(badKeys) == 0 || !*deleteBad {
		return
	}

	for _, key := range badKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
}
