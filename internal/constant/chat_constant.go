package constant

// Fixed-schema tables the pipeline knows about
const (
	TableTestData       = "data_testdata"
	TableDataCardReport = "data_datacardreport"
	TableDataOrders     = "data_orders"
)

// WarehouseBocaRaton is the canonical warehouse id used at ingestion time.
// Other warehouses are added here when the dashboard onboards them.
const WarehouseBocaRaton = "(WH: 10) - Boca Raton (951)  - FL"

// Order status ids in data_testdata
const (
	OrderStatusPending   = 1
	OrderStatusCompleted = 2
	OrderStatusCanceled  = 3
)

// OrderStatusNames maps status ids to their Spanish display names
var OrderStatusNames = map[int]string{
	OrderStatusPending:   "pendiente",
	OrderStatusCompleted: "completada",
	OrderStatusCanceled:  "cancelada",
}

// DayNames maps day slots 1-7 (day1_value..day7_value) to display names
var DayNames = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// Report query bounds
const (
	ReportDefaultLimit = 5
	ReportMaxLimit     = 20
)

// Fixed user-facing replies. The service answers in Spanish like the
// dashboard frontend it serves.
const (
	MsgNoRelevantInformation = "No relevant information found in the allowed database for your query."
	MsgGenericApology        = "Lo siento, ocurrió un error al procesar tu pregunta. Por favor intenta de nuevo."
	MsgSQLClarification      = "No pude traducir tu pregunta a una consulta segura. ¿Puedes reformularla indicando qué datos de órdenes necesitas?"
	MsgCustomerNotSupported  = "La consulta de información de clientes aún no se ha adaptado a las nuevas tablas. (Implementación pendiente)"
)

// RagPassageDelimiter separates retrieved passages inside a grounded prompt
const RagPassageDelimiter = "\n\n---\n\n"

// RagDefaultTopK is the similarity search size when none is configured
const RagDefaultTopK = 3
