package structured

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/model"
	"warehouse-chat-be/internal/pkg/logger"
	"warehouse-chat-be/internal/repository/contract"
	"warehouse-chat-be/internal/repository/specification"
	"warehouse-chat-be/pkg/chat/intent"
	"warehouse-chat-be/pkg/chat/normalizer"
)

// Result is a deterministic answer built from templated queries. Rows carries
// the structured payload for the frontend, nil when the answer has none.
type Result struct {
	Text string
	Rows []map[string]interface{}
}

// Executor answers the intents that never need an LLM: counts, lookups,
// datacard reports and schema listings.
type Executor struct {
	orderRepo  contract.OrderRepository
	reportRepo contract.ReportRepository
	schemaRepo contract.SchemaRepository
	logger     logger.ILogger
}

func NewExecutor(
	orderRepo contract.OrderRepository,
	reportRepo contract.ReportRepository,
	schemaRepo contract.SchemaRepository,
	log logger.ILogger,
) *Executor {
	return &Executor{
		orderRepo:  orderRepo,
		reportRepo: reportRepo,
		schemaRepo: schemaRepo,
		logger:     log,
	}
}

var (
	// checked in order, first hit wins
	statusWords = []struct {
		pattern  *regexp.Regexp
		statusId int
	}{
		{regexp.MustCompile(`(?i)\b(?:pendiente|pending)s?\b`), constant.OrderStatusPending},
		{regexp.MustCompile(`(?i)\b(?:completada|completed)s?\b`), constant.OrderStatusCompleted},
		{regexp.MustCompile(`(?i)\b(?:cancelada|cancelled|canceled)s?\b`), constant.OrderStatusCanceled},
	}

	limitPattern       = regexp.MustCompile(`(?i)\b(?:top|primer[oa]s?|últim[oa]s?|ultimos?|last|first)\s+(\d{1,3})\b`)
	limitReportPattern = regexp.MustCompile(`(?i)\b(\d{1,3})\s+(?:reportes?|reports?)\b`)
	descPattern        = regexp.MustCompile(`(?i)(?:sobre|acerca de|para|about)\s+["']?([^"']+?)["']?\s*$`)
	dayAskWords        = regexp.MustCompile(`(?i)\b(día|dias|días|day|days|diari[oa]s?|daily|lunes|martes|miércoles|miercoles|jueves|viernes|sábado|sabado|domingo|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// Execute resolves an already classified structured intent. Errors collapse
// into Spanish error text; Rows is nil on every failure path.
func (e *Executor) Execute(ctx context.Context, it *intent.Intent, msg *normalizer.NormalizedMessage) *Result {
	switch it.Kind {
	case intent.KindEntityLookup:
		return e.entityLookup(ctx, it.Identifier)
	case intent.KindOrderStatusCount:
		return e.orderStatusCount(ctx, msg)
	case intent.KindCustomerInfo:
		return &Result{Text: constant.MsgCustomerNotSupported}
	case intent.KindReport:
		return e.datacardReport(ctx, msg)
	case intent.KindSchemaInfo:
		return e.schemaInfo(ctx, msg)
	default:
		e.logger.Warn("structured_executor", "unsupported intent routed to executor", map[string]interface{}{
			"kind": string(it.Kind),
		})
		return &Result{Text: constant.MsgGenericApology}
	}
}

func (e *Executor) entityLookup(ctx context.Context, identifier string) *Result {
	order, err := e.orderRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		e.logger.Error("structured_executor", "order lookup failed", map[string]interface{}{
			"identifier": identifier,
			"error":      err.Error(),
		})
		return &Result{Text: "Ocurrió un error buscando la orden. Por favor intenta de nuevo."}
	}
	if order == nil {
		return &Result{Text: fmt.Sprintf("No encontré ninguna orden con el identificador %q.", identifier)}
	}

	statusName, ok := constant.OrderStatusNames[order.OrderStatusId]
	if !ok {
		statusName = fmt.Sprintf("estado %d", order.OrderStatusId)
	}
	text := fmt.Sprintf(
		"La orden %d (código %s) está %s. Clase: %d. Última sincronización: %s.",
		order.OrderId, order.LookupCode, statusName, order.OrderClassId,
		order.FetchedAt.Format("2006-01-02 15:04"),
	)
	row := map[string]interface{}{
		"order_id":        order.OrderId,
		"lookup_code":     order.LookupCode,
		"order_class_id":  order.OrderClassId,
		"order_status_id": order.OrderStatusId,
		"status":          statusName,
		"fetched_at":      order.FetchedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	return &Result{Text: text, Rows: []map[string]interface{}{row}}
}

func (e *Executor) orderStatusCount(ctx context.Context, msg *normalizer.NormalizedMessage) *Result {
	if statusId, ok := detectStatus(msg.Text); ok {
		count, err := e.orderRepo.CountByStatus(ctx, statusId)
		if err != nil {
			return e.countError(err)
		}
		name := constant.OrderStatusNames[statusId]
		if count == 1 {
			return &Result{Text: fmt.Sprintf("Hay 1 orden %s.", name)}
		}
		return &Result{Text: fmt.Sprintf("Hay %d órdenes con estado %s.", count, name)}
	}

	counts, err := e.orderRepo.CountGroupedByStatus(ctx)
	if err != nil {
		return e.countError(err)
	}
	if len(counts) == 0 {
		return &Result{Text: "No hay órdenes registradas por el momento."}
	}

	var sb strings.Builder
	var total int64
	sb.WriteString("Resumen de órdenes por estado:\n")
	for _, sc := range counts {
		name, ok := constant.OrderStatusNames[sc.StatusId]
		if !ok {
			name = fmt.Sprintf("estado %d", sc.StatusId)
		}
		sb.WriteString(fmt.Sprintf("- %s: %d\n", name, sc.Count))
		total += sc.Count
	}
	sb.WriteString(fmt.Sprintf("Total: %d órdenes.", total))
	return &Result{Text: sb.String()}
}

func (e *Executor) countError(err error) *Result {
	e.logger.Error("structured_executor", "order count failed", map[string]interface{}{
		"error": err.Error(),
	})
	return &Result{Text: "Ocurrió un error consultando las órdenes. Por favor intenta de nuevo."}
}

func (e *Executor) datacardReport(ctx context.Context, msg *normalizer.NormalizedMessage) *Result {
	limit := parseLimit(msg.Text)
	specs := []specification.Specification{
		specification.NewestFirst{ByListOrder: true},
		specification.Limit{Count: limit},
	}
	if msg.Warehouse != "" {
		specs = append(specs, specification.WarehouseIs{Warehouse: msg.Warehouse})
	}
	if msg.Week > 0 {
		specs = append(specs, specification.WeekOfYear{Week: msg.Week, Year: msg.Year})
	}
	desc := parseDescription(msg.Text)
	if desc != "" {
		specs = append(specs, specification.DescriptionContains{Substring: desc})
	}

	reports, err := e.reportRepo.FindAll(ctx, specs...)
	if err != nil {
		e.logger.Error("structured_executor", "report query failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &Result{Text: "Ocurrió un error consultando los reportes. Por favor intenta de nuevo."}
	}
	if len(reports) == 0 {
		return &Result{Text: "No encontré reportes que coincidan con tu consulta."}
	}

	// A description filter or an explicit day mention asks for the per-day
	// breakdown; plain listings stay compact.
	wantDays := desc != "" || msg.DaySlot > 0 || dayAskWords.MatchString(msg.Text)
	var sb strings.Builder
	rows := make([]map[string]interface{}, 0, len(reports))
	sb.WriteString(fmt.Sprintf("Encontré %d reporte(s):\n", len(reports)))
	for _, rep := range reports {
		rows = append(rows, reportRow(rep))
		if wantDays {
			sb.WriteString(renderReportWithDays(rep, msg.DaySlot))
		} else {
			sb.WriteString(renderReportLine(rep))
		}
	}
	return &Result{Text: strings.TrimRight(sb.String(), "\n"), Rows: rows}
}

func renderReportLine(rep *model.DataCardReport) string {
	total := "N/D"
	if rep.Total != nil {
		total = strconv.FormatFloat(*rep.Total, 'f', -1, 64)
	}
	return fmt.Sprintf("- %s | %s | semana %d/%d | total %s\n",
		rep.Description, rep.Warehouse, rep.Week, rep.Year, total)
}

func renderReportWithDays(rep *model.DataCardReport, daySlot int) string {
	var sb strings.Builder
	sb.WriteString(renderReportLine(rep))
	for i, v := range rep.DayValues() {
		slot := i + 1
		if daySlot > 0 && slot != daySlot {
			continue
		}
		if v == nil {
			if daySlot > 0 {
				sb.WriteString(fmt.Sprintf("    %s: sin dato\n", constant.DayNames[i]))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s: %s\n", constant.DayNames[i], strconv.FormatFloat(*v, 'f', -1, 64)))
	}
	return sb.String()
}

func reportRow(rep *model.DataCardReport) map[string]interface{} {
	row := map[string]interface{}{
		"id":          rep.Id,
		"warehouse":   rep.Warehouse,
		"description": rep.Description,
		"total":       rep.Total,
		"year":        rep.Year,
		"week":        rep.Week,
		"section":     rep.Section,
		"list_order":  rep.ListOrder,
	}
	for i, v := range rep.DayValues() {
		row[fmt.Sprintf("day%d_value", i+1)] = v
	}
	return row
}

func (e *Executor) schemaInfo(ctx context.Context, msg *normalizer.NormalizedMessage) *Result {
	if msg.Table == "" {
		return &Result{Text: "Las tablas disponibles son:\n" +
			"- " + constant.TableTestData + " (órdenes sincronizadas)\n" +
			"- " + constant.TableDataCardReport + " (reportes semanales de datacard)\n" +
			"- " + constant.TableDataOrders + " (movimientos de órdenes)\n" +
			"Pregunta por una de ellas para ver sus columnas."}
	}

	columns, err := e.schemaRepo.Columns(ctx, msg.Table)
	if err != nil || len(columns) == 0 {
		if err != nil {
			e.logger.Error("structured_executor", "schema query failed", map[string]interface{}{
				"table": msg.Table,
				"error": err.Error(),
			})
		}
		return &Result{Text: fmt.Sprintf("No pude obtener la estructura de la tabla %q.", msg.Table)}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Columnas de %s:\n\n", msg.Table))
	sb.WriteString("| Columna | Tipo | Nullable |\n")
	sb.WriteString("|---------|------|----------|\n")
	rows := make([]map[string]interface{}, 0, len(columns))
	for _, col := range columns {
		nullable := "no"
		if col.Nullable {
			nullable = "sí"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", col.Name, col.DataType, nullable))
		rows = append(rows, map[string]interface{}{
			"column":    col.Name,
			"data_type": col.DataType,
			"nullable":  col.Nullable,
		})
	}
	return &Result{Text: strings.TrimRight(sb.String(), "\n"), Rows: rows}
}

func detectStatus(text string) (int, bool) {
	for _, sw := range statusWords {
		if sw.pattern.MatchString(text) {
			return sw.statusId, true
		}
	}
	return 0, false
}

func parseLimit(text string) int {
	m := limitPattern.FindStringSubmatch(text)
	if m == nil {
		m = limitReportPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return constant.ReportDefaultLimit
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return constant.ReportDefaultLimit
	}
	if n > constant.ReportMaxLimit {
		return constant.ReportMaxLimit
	}
	return n
}

func parseDescription(text string) string {
	m := descPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
