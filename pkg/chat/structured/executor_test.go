package structured

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/model"
	"warehouse-chat-be/internal/repository/contract"
	"warehouse-chat-be/internal/repository/specification"
	"warehouse-chat-be/pkg/chat/intent"
	"warehouse-chat-be/pkg/chat/normalizer"
)

type stubOrderRepo struct {
	byStatus       map[int]int64
	grouped        []contract.StatusCount
	order          *model.TestDataOrder
	err            error
	lastStatusId   int
	countByCalled  bool
	groupedCalled  bool
	lastIdentifier string
}

func (s *stubOrderRepo) CountByStatus(ctx context.Context, statusId int) (int64, error) {
	s.countByCalled = true
	s.lastStatusId = statusId
	return s.byStatus[statusId], s.err
}

func (s *stubOrderRepo) CountGroupedByStatus(ctx context.Context) ([]contract.StatusCount, error) {
	s.groupedCalled = true
	return s.grouped, s.err
}

func (s *stubOrderRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.TestDataOrder, error) {
	s.lastIdentifier = identifier
	return s.order, s.err
}

type stubReportRepo struct {
	reports   []*model.DataCardReport
	err       error
	lastSpecs []specification.Specification
}

func (s *stubReportRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.DataCardReport, error) {
	s.lastSpecs = specs
	return s.reports, s.err
}

func (s *stubReportRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(s.reports)), s.err
}

type stubSchemaRepo struct {
	columns []contract.ColumnInfo
	err     error
}

func (s *stubSchemaRepo) Columns(ctx context.Context, table string) ([]contract.ColumnInfo, error) {
	return s.columns, s.err
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestExecutor(orders *stubOrderRepo, reports *stubReportRepo, schema *stubSchemaRepo) *Executor {
	if orders == nil {
		orders = &stubOrderRepo{}
	}
	if reports == nil {
		reports = &stubReportRepo{}
	}
	if schema == nil {
		schema = &stubSchemaRepo{}
	}
	return NewExecutor(orders, reports, schema, noopLogger{})
}

func classify(input string) (*intent.Intent, *normalizer.NormalizedMessage) {
	msg := normalizer.Normalize(input)
	return intent.Classify(msg), msg
}

func TestSingleStatusCount(t *testing.T) {
	orders := &stubOrderRepo{byStatus: map[int]int64{constant.OrderStatusPending: 12}}
	e := newTestExecutor(orders, nil, nil)

	it, msg := classify("¿cuántas órdenes pendientes hay?")
	result := e.Execute(context.Background(), it, msg)

	assert.True(t, orders.countByCalled)
	assert.Equal(t, constant.OrderStatusPending, orders.lastStatusId)
	assert.Contains(t, result.Text, "12")
	assert.Contains(t, result.Text, "pendiente")
	assert.Nil(t, result.Rows, "count answers carry no structured rows")
}

func TestSingleStatusCountEnglish(t *testing.T) {
	orders := &stubOrderRepo{byStatus: map[int]int64{constant.OrderStatusPending: 4}}
	e := newTestExecutor(orders, nil, nil)

	it, msg := classify("How many orders are pending?")
	result := e.Execute(context.Background(), it, msg)

	assert.True(t, orders.countByCalled, "a named status selects the single-status branch")
	assert.Equal(t, constant.OrderStatusPending, orders.lastStatusId)
	assert.Nil(t, result.Rows)
}

func TestDetectStatusWholeWords(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus int
		wantFound  bool
	}{
		{"spanish singular", "órdenes en estado pendiente", constant.OrderStatusPending, true},
		{"spanish plural", "cuántas completadas hay", constant.OrderStatusCompleted, true},
		{"english", "how many canceled orders", constant.OrderStatusCanceled, true},
		{"embedded word ignored", "status of orders we are expending", 0, false},
		{"no status word", "cuántas órdenes hay", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, found := detectStatus(tt.input)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestGroupedStatusCount(t *testing.T) {
	orders := &stubOrderRepo{grouped: []contract.StatusCount{
		{StatusId: constant.OrderStatusPending, Count: 3},
		{StatusId: constant.OrderStatusCompleted, Count: 5},
		{StatusId: constant.OrderStatusCanceled, Count: 1},
	}}
	e := newTestExecutor(orders, nil, nil)

	it, msg := classify("dame un resumen del status de las órdenes")
	result := e.Execute(context.Background(), it, msg)

	assert.True(t, orders.groupedCalled)
	assert.Contains(t, result.Text, "pendiente: 3")
	assert.Contains(t, result.Text, "completada: 5")
	assert.Contains(t, result.Text, "cancelada: 1")
	assert.Contains(t, result.Text, "Total: 9")
	assert.Nil(t, result.Rows)
}

func TestEntityLookupFound(t *testing.T) {
	orders := &stubOrderRepo{order: &model.TestDataOrder{
		OrderId:       1042,
		OrderClassId:  2,
		OrderStatusId: constant.OrderStatusCompleted,
		LookupCode:    "ORD-1042",
	}}
	e := newTestExecutor(orders, nil, nil)

	it, msg := classify("dame el status de la orden: ORD-1042")
	result := e.Execute(context.Background(), it, msg)

	assert.Equal(t, "ORD-1042", orders.lastIdentifier)
	assert.Contains(t, result.Text, "completada")
	assert.Len(t, result.Rows, 1)
	assert.Equal(t, "ORD-1042", result.Rows[0]["lookup_code"])
}

func TestEntityLookupMissing(t *testing.T) {
	e := newTestExecutor(&stubOrderRepo{}, nil, nil)

	it, msg := classify("busca el pedido X99")
	result := e.Execute(context.Background(), it, msg)

	assert.Contains(t, result.Text, "X99")
	assert.Contains(t, result.Text, "No encontré")
	assert.Nil(t, result.Rows)
}

func TestCustomerInfoFixedReply(t *testing.T) {
	e := newTestExecutor(nil, nil, nil)

	it, msg := classify("información del cliente acme")
	result := e.Execute(context.Background(), it, msg)

	assert.Equal(t, constant.MsgCustomerNotSupported, result.Text)
	assert.Nil(t, result.Rows)
}

func reportFixture() *model.DataCardReport {
	total := 120.0
	monday := 10.0
	return &model.DataCardReport{
		Id:          1,
		Warehouse:   constant.WarehouseBocaRaton,
		Description: "Inbound pallets",
		Total:       &total,
		Day1Value:   &monday,
		Year:        2024,
		Week:        12,
		Section:     "operations",
	}
}

func TestReportCompactLines(t *testing.T) {
	reports := &stubReportRepo{reports: []*model.DataCardReport{reportFixture()}}
	e := newTestExecutor(nil, reports, nil)

	it, msg := classify("muéstrame los reportes de boca raton")
	result := e.Execute(context.Background(), it, msg)

	assert.Contains(t, result.Text, "Inbound pallets")
	assert.Contains(t, result.Text, "semana 12/2024")
	assert.NotContains(t, result.Text, "Lunes", "day breakdown only when asked")
	assert.Len(t, result.Rows, 1)
	assert.Equal(t, constant.WarehouseBocaRaton, result.Rows[0]["warehouse"])
}

func TestReportDayBreakdown(t *testing.T) {
	reports := &stubReportRepo{reports: []*model.DataCardReport{reportFixture()}}
	e := newTestExecutor(nil, reports, nil)

	it, msg := classify("reporte del lunes de boca raton")
	result := e.Execute(context.Background(), it, msg)

	assert.Contains(t, result.Text, "Lunes: 10")
	assert.NotContains(t, result.Text, "Martes", "a named day filters the breakdown")
}

func TestReportDescriptionFilterShowsDays(t *testing.T) {
	reports := &stubReportRepo{reports: []*model.DataCardReport{reportFixture()}}
	e := newTestExecutor(nil, reports, nil)

	it, msg := classify(`reportes sobre "Inbound pallets"`)
	result := e.Execute(context.Background(), it, msg)

	assert.Contains(t, result.Text, "Lunes: 10")
	assert.NotContains(t, result.Text, "Martes", "null day values stay hidden without a named day")
}

func TestReportLimitParsing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"default", "muéstrame los reportes", constant.ReportDefaultLimit},
		{"explicit", "muéstrame los últimos 3 reportes", 3},
		{"capped", "muéstrame los últimos 99 reportes", constant.ReportMaxLimit},
		{"count before noun", "dame 10 reportes", 10},
		{"count before noun english", "show me 12 reports", 12},
		{"count before noun capped", "muéstrame 25 reportes", constant.ReportMaxLimit},
		{"singular noun", "dame 1 reporte", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLimit(tt.input))
		})
	}
}

func TestReportDescriptionParsing(t *testing.T) {
	assert.Equal(t, "inbound pallets", parseDescription(`reportes sobre "inbound pallets"`))
	assert.Equal(t, "picking", parseDescription("reportes acerca de picking"))
	assert.Equal(t, "", parseDescription("reportes de la semana"))
}

func TestSchemaInfoTable(t *testing.T) {
	schema := &stubSchemaRepo{columns: []contract.ColumnInfo{
		{Name: "order_id", DataType: "bigint", Nullable: false},
		{Name: "lookup_code", DataType: "text", Nullable: true},
	}}
	e := newTestExecutor(nil, nil, schema)

	it, msg := classify("¿qué columnas tiene la tabla data_testdata?")
	result := e.Execute(context.Background(), it, msg)

	assert.Contains(t, result.Text, "| order_id | bigint | no |")
	assert.Contains(t, result.Text, "| lookup_code | text | sí |")
	assert.Len(t, result.Rows, 2)
}

func TestSchemaInfoCatalog(t *testing.T) {
	e := newTestExecutor(nil, nil, nil)

	it, msg := classify("¿qué tablas puedo consultar?")
	result := e.Execute(context.Background(), it, msg)

	assert.Contains(t, result.Text, constant.TableTestData)
	assert.Contains(t, result.Text, constant.TableDataCardReport)
	assert.Contains(t, result.Text, constant.TableDataOrders)
}

func TestRepositoryErrorsBecomeText(t *testing.T) {
	orders := &stubOrderRepo{err: errors.New("conn refused")}
	e := newTestExecutor(orders, nil, nil)

	it, msg := classify("¿cuántas órdenes pendientes hay?")
	result := e.Execute(context.Background(), it, msg)

	assert.Contains(t, result.Text, "error")
	assert.NotContains(t, result.Text, "conn refused", "driver errors never reach the user")
	assert.Nil(t, result.Rows)
}
