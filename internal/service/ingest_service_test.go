package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/dto"
)

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestIngestTableRejectsUnknownTable(t *testing.T) {
	svc := NewIngestService(&stubQueryRunner{}, &capturingPublisher{}, noopLogger{})

	_, err := svc.IngestTable(context.Background(), "data_orders")
	assert.Error(t, err, "the text-to-sql table is not ingestable")

	_, err = svc.IngestTable(context.Background(), "pg_catalog.pg_tables")
	assert.Error(t, err)
}

func TestIngestTablePublishesOneEventPerRow(t *testing.T) {
	runner := &stubQueryRunner{
		columns: []string{"order_id", "order_status_id", "lookup_code"},
		rows: [][]interface{}{
			{int64(1), int64(2), []byte("ORD-1")},
			{int64(2), int64(1), []byte("ORD-2")},
		},
	}
	publisher := &capturingPublisher{}
	svc := NewIngestService(runner, publisher, noopLogger{})

	published, err := svc.IngestTable(context.Background(), constant.TableTestData)
	assert.NoError(t, err)
	assert.Equal(t, 2, published)
	assert.Len(t, publisher.payloads, 2)

	var event dto.PublishEmbedDocumentMessage
	assert.NoError(t, json.Unmarshal(publisher.payloads[0], &event))
	assert.Contains(t, event.Document, "order_id: 1")
	assert.Contains(t, event.Document, "estado: completada", "status ids are spelled out for retrieval")
	assert.Equal(t, constant.TableTestData, event.Metadata["source_table"])
}

func TestRenderDocumentDataCardNote(t *testing.T) {
	record := map[string]interface{}{
		"warehouse":   constant.WarehouseBocaRaton,
		"description": "Inbound pallets",
		"week":        int64(12),
		"year":        int64(2024),
		"day1_value":  "10.5",
	}
	columns := []string{"warehouse", "description", "week", "year", "day1_value"}

	doc := renderDocument(constant.TableDataCardReport, columns, record)
	assert.Contains(t, doc, "description: Inbound pallets")
	assert.Contains(t, doc, "Lunes a Domingo")
}

func TestBuildMetadataStringifiesFilters(t *testing.T) {
	record := map[string]interface{}{
		"warehouse": constant.WarehouseBocaRaton,
		"week":      int64(12),
		"year":      int64(2024),
		"total":     "99.9",
	}

	metadata := buildMetadata(constant.TableDataCardReport, record)
	assert.Equal(t, constant.TableDataCardReport, metadata["source_table"])
	assert.Equal(t, "12", metadata["week"], "jsonb ->> comparisons are textual")
	assert.Equal(t, "2024", metadata["year"])
	assert.NotContains(t, metadata, "total")
}
