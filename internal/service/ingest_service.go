package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/dto"
	"warehouse-chat-be/internal/pkg/logger"
	"warehouse-chat-be/internal/repository/contract"
	"warehouse-chat-be/pkg/chat/sqlgen"
)

// IIngestService turns rows of the allow-listed source tables into
// vectorization events. The consumer side embeds and stores them.
type IIngestService interface {
	// IngestTable publishes one embed event per row. Returns the number of
	// events published.
	IngestTable(ctx context.Context, table string) (int, error)
}

// ingestable tables. data_orders is deliberately absent: it answers through
// generated SQL, not retrieval.
var ingestableTables = map[string]bool{
	constant.TableTestData:       true,
	constant.TableDataCardReport: true,
}

type ingestService struct {
	queryRunner contract.QueryRunner
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewIngestService(queryRunner contract.QueryRunner, publisher IPublisherService, log logger.ILogger) IIngestService {
	return &ingestService{
		queryRunner: queryRunner,
		publisher:   publisher,
		logger:      log,
	}
}

func (is *ingestService) IngestTable(ctx context.Context, table string) (int, error) {
	if !ingestableTables[table] {
		return 0, fmt.Errorf("table %q is not ingestable", table)
	}

	columns, rows, err := is.queryRunner.RunSelect(ctx, "SELECT * FROM "+table)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", table, err)
	}
	records := sqlgen.ConvertRows(columns, rows)

	published := 0
	for _, record := range records {
		event := dto.PublishEmbedDocumentMessage{
			Document: renderDocument(table, columns, record),
			Metadata: buildMetadata(table, record),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			is.logger.Error("ingest_service", "failed to marshal embed event", map[string]interface{}{
				"table": table,
				"error": err.Error(),
			})
			continue
		}
		if err := is.publisher.Publish(ctx, payload); err != nil {
			return published, fmt.Errorf("publishing embed event: %w", err)
		}
		published++
	}

	is.logger.Info("ingest_service", "table ingestion published", map[string]interface{}{
		"table": table,
		"rows":  published,
	})
	return published, nil
}

// renderDocument flattens one row into the "column: value" text that gets
// embedded. Datacard rows note what the day columns mean so retrieval can
// answer day-level questions.
func renderDocument(table string, columns []string, record map[string]interface{}) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tabla: %s\n", table))
	for _, col := range columns {
		value := record[col]
		if value == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %v\n", col, value))
	}
	if table == constant.TableDataCardReport {
		sb.WriteString("Nota: day1_value a day7_value corresponden a Lunes a Domingo de la semana del reporte.\n")
	}
	if table == constant.TableTestData {
		if statusId, ok := toInt(record["order_status_id"]); ok {
			if name, known := constant.OrderStatusNames[statusId]; known {
				sb.WriteString(fmt.Sprintf("estado: %s\n", name))
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// buildMetadata extracts the fields scoped retrieval filters on. Values are
// stored as strings: jsonb ->> comparisons are textual.
func buildMetadata(table string, record map[string]interface{}) map[string]interface{} {
	metadata := map[string]interface{}{
		"source_table": table,
	}
	for _, key := range []string{"warehouse", "week", "year", "section"} {
		if value, ok := record[key]; ok && value != nil {
			metadata[key] = fmt.Sprint(value)
		}
	}
	return metadata
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}
