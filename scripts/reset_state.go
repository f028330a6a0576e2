package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Clears the persisted application snapshot from both storage backends.
// The server re-seeds the default dataset on next start.
func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Application State")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL SHOP DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete the state snapshot (customers, orders, employees,")
	fmt.Println("    measurements, garment types, shop info)")
	fmt.Println("  - Clear the remember-me flag")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	ctx := context.Background()
	keys := []string{"tailor:state", "tailor:remember"}

	fmt.Println()
	fmt.Println("Resetting state...")

	// Redis (primary backend)
	redisAddr := fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379"))
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Printf("  - Redis unreachable at %s, skipping (%v)\n", redisAddr, err)
	} else {
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			log.Fatalf("Failed to delete Redis keys: %v\n", err)
		}
		fmt.Println("  ✓ Cleared Redis snapshot")
	}
	rdb.Close()

	// Postgres (fallback backend)
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "tailor_db"))

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		fmt.Printf("  - Postgres unreachable, skipping (%v)\n", err)
	} else {
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			fmt.Printf("  - Postgres unreachable, skipping (%v)\n", err)
		} else {
			for _, key := range keys {
				if _, err := pool.Exec(ctx, "DELETE FROM app_snapshots WHERE key = $1", key); err != nil {
					log.Fatalf("Failed to delete snapshot row %s: %v\n", key, err)
				}
			}
			fmt.Println("  ✓ Cleared Postgres snapshot")
		}
	}

	fmt.Println()
	fmt.Println("========================================")
	fmt.Println("   Reset complete")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("Restart the server to seed the default dataset.")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
