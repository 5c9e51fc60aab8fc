package main

import (
	"fmt"
	"log"

	"github.com/trends-intl/internal/config"
	"github.com/trends-intl/internal/similarity"
	"github.com/trends-intl/internal/web"
)

func main() {
	config.LoadEnv()

	fmt.Println("=== International Trends Dashboard API ===")

	host := config.GetEnv("WEB_HOST", "localhost")
	port := config.GetEnvInt("WEB_PORT", 8080)
	dbName := config.GetEnv("PGDATABASE", "trends_db")

	fmt.Printf("Server: http://%s:%d\n", host, port)
	fmt.Printf("Database: %s\n", dbName)

	webConfig := &web.Config{
		Server: web.ServerConfig{
			Host: host,
			Port: port,
		},
		Database: web.DatabaseConfig{
			URL: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
				config.GetEnv("PGUSER", "postgres"),
				config.GetEnv("PGPASSWORD", "postgres"),
				config.GetEnv("PGHOST", "localhost"),
				config.GetEnv("PGPORT", "5432"),
				dbName),
			MaxConnections: config.GetEnvInt("DB_MAX_CONNECTIONS", 10),
		},
		Data: web.DataConfig{
			CatalogDir:    config.GetEnv("CATALOG_DIR", "Country_Regions"),
			TermGroupsCSV: config.GetEnv("TERM_GROUPS_CSV", ""),
			Threshold:     config.GetEnvFloat("TRENDS_MATCH_THRESHOLD", similarity.DefaultThreshold),
		},
	}

	server, err := web.NewServer(webConfig)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
