// Command seedkey creates a local test subscription and prints its API
// key, for exercising the generation endpoint during development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/recipe-genie/backend/config"
	"github.com/recipe-genie/backend/internal/database"
	"github.com/recipe-genie/backend/internal/service"
)

func main() {
	uniqueID := flag.String("user", "dev-user", "unique id for the subscription record")
	plan := flag.String("plan", "free", "subscription plan name")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	apiKey, err := service.NewSubscriptionService(db).Subscribe(context.Background(), *uniqueID, *plan)
	if err != nil {
		log.Fatalf("Failed to create API key: %v", err)
	}

	fmt.Println(apiKey)
}
