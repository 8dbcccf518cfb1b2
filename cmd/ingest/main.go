package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"warehouse-chat-be/internal/bootstrap"
	"warehouse-chat-be/internal/config"
	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/pkg/database"
)

// Publishes embed events for the source tables and waits for the in-process
// consumer to drain before exiting.
func main() {
	tables := flag.String("tables", strings.Join([]string{constant.TableTestData, constant.TableDataCardReport}, ","), "comma separated tables to ingest")
	drainWait := flag.Duration("wait", 30*time.Second, "time to wait for the consumer to finish embedding")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	ctx := context.Background()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	total := 0
	for _, table := range strings.Split(*tables, ",") {
		table = strings.TrimSpace(table)
		if table == "" {
			continue
		}
		published, err := container.IngestService.IngestTable(ctx, table)
		if err != nil {
			log.Printf("[ERROR] Ingest %s failed: %v", table, err)
			continue
		}
		log.Printf("[INFO] Queued %d rows from %s", published, table)
		total += published
	}

	log.Printf("[INFO] %d events queued, waiting %s for embedding to finish", total, *drainWait)
	time.Sleep(*drainWait)
	log.Println("[INFO] Ingestion run complete")
}
