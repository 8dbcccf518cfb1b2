package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/repository/implementation"
	"warehouse-chat-be/pkg/database"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("Check Order Repository", func(t *testing.T) {
		orderRepo := implementation.NewOrderRepository(gormDB)
		counts, err := orderRepo.CountGroupedByStatus(ctx)
		assert.NoError(t, err)
		t.Logf("data_testdata status groups: %d", len(counts))
	})

	t.Run("Check Report Repository", func(t *testing.T) {
		reportRepo := implementation.NewReportRepository(gormDB)
		count, err := reportRepo.Count(ctx)
		assert.NoError(t, err)
		t.Logf("data_datacardreport rows: %d", count)
	})

	t.Run("Check Schema Repository", func(t *testing.T) {
		schemaRepo := implementation.NewSchemaRepository(gormDB)
		columns, err := schemaRepo.Columns(ctx, constant.TableTestData)
		assert.NoError(t, err)
		assert.NotEmpty(t, columns)
	})

	t.Run("Check Embedding Store", func(t *testing.T) {
		docRepo := implementation.NewDocumentEmbeddingRepository(gormDB)
		count, err := docRepo.Count(ctx)
		assert.NoError(t, err)
		t.Logf("document_embeddings rows: %d", count)
	})
}
