package intent

import (
	"regexp"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/pkg/chat/normalizer"
)

// Kind identifies the answering strategy selected for a message
type Kind string

const (
	KindEntityLookup     Kind = "ENTITY_LOOKUP"
	KindOrderStatusCount Kind = "ORDER_STATUS_COUNT"
	KindCustomerInfo     Kind = "CUSTOMER_INFO"
	KindReport           Kind = "REPORT"
	KindSchemaInfo       Kind = "SCHEMA_INFO"
	KindScopedRetrieval  Kind = "SCOPED_RETRIEVAL"
	KindTextToSQL        Kind = "TEXT_TO_SQL"
	KindOpenRetrieval    Kind = "OPEN_RETRIEVAL"
)

// Intent is the classified strategy plus the parameters extracted with it.
// Exactly one intent is produced per message.
type Intent struct {
	Kind        Kind
	Identifier  string // entity lookup code
	TableFilter string // scoped retrieval target table
}

var (
	// Explicit identifier forms: "order: ABC123", "pedido #42", or a bare
	// prefix followed by a token containing at least one digit. A standalone
	// alphanumeric token is deliberately NOT an identifier: it matches
	// ordinary words far too often.
	idWithSeparator = regexp.MustCompile(`(?i)\b(?:order|orden|pedido|shipment|env[ií]o)\s*[:#]\s*([A-Za-z0-9][A-Za-z0-9-]*)\b`)
	idWithDigits    = regexp.MustCompile(`(?i)\b(?:order|orden|pedido|shipment|env[ií]o)\s+#?([A-Za-z]*\d[A-Za-z0-9-]*)\b`)

	orderWords      = regexp.MustCompile(`(?i)\b(order|orders|órden|órdenes|orden|ordenes|pedido|pedidos)\b`)
	statusWords     = regexp.MustCompile(`(?i)\b(status|estado|estados)\b`)
	howManyWords    = regexp.MustCompile(`(?i)\bcuant[oa]s\b`)
	statusNameWords = regexp.MustCompile(`(?i)\b(pendiente|pendientes|completada|completadas|cancelada|canceladas|pending|completed|canceled|cancelled)\b`)

	customerWords = regexp.MustCompile(`(?i)\b(cliente|clientes|customer|customers)\b`)
	reportWords   = regexp.MustCompile(`(?i)\b(reporte|reportes|report|reports|datacardreport|data card|datacard|dashboard|estadísticas|estadistica|resumen)\b`)
	schemaWords   = regexp.MustCompile(`(?i)\b(tabla|tablas|table|tables|esquema|schema|columna|columnas|column|columns|estructura|structure)\b`)

	dataOrdersWords = regexp.MustCompile(`(?i)\b(inbound|outbound|data[_ ]orders)\b`)
)

// rule pairs a predicate with the intent it produces. Rules are evaluated in
// slice order and the first match wins, so priority lives in the data, not in
// control flow.
type rule struct {
	name  string
	match func(msg *normalizer.NormalizedMessage) *Intent
}

var rules = []rule{
	{
		name: "entity identifier",
		match: func(msg *normalizer.NormalizedMessage) *Intent {
			if m := idWithSeparator.FindStringSubmatch(msg.Text); m != nil {
				return &Intent{Kind: KindEntityLookup, Identifier: m[1]}
			}
			if m := idWithDigits.FindStringSubmatch(msg.Text); m != nil {
				return &Intent{Kind: KindEntityLookup, Identifier: m[1]}
			}
			return nil
		},
	},
	{
		name: "order status count",
		match: func(msg *normalizer.NormalizedMessage) *Intent {
			if orderWords.MatchString(msg.Text) ||
				statusWords.MatchString(msg.Text) ||
				(howManyWords.MatchString(msg.Text) && statusNameWords.MatchString(msg.Text)) {
				return &Intent{Kind: KindOrderStatusCount}
			}
			return nil
		},
	},
	{
		name: "customer info",
		match: func(msg *normalizer.NormalizedMessage) *Intent {
			if customerWords.MatchString(msg.Text) {
				return &Intent{Kind: KindCustomerInfo}
			}
			return nil
		},
	},
	{
		name: "datacard report",
		match: func(msg *normalizer.NormalizedMessage) *Intent {
			if reportWords.MatchString(msg.Text) {
				return &Intent{Kind: KindReport}
			}
			return nil
		},
	},
	{
		name: "schema info",
		match: func(msg *normalizer.NormalizedMessage) *Intent {
			if schemaWords.MatchString(msg.Text) {
				return &Intent{Kind: KindSchemaInfo}
			}
			return nil
		},
	},
	{
		name: "table scoped retrieval",
		match: func(msg *normalizer.NormalizedMessage) *Intent {
			if msg.Table != "" {
				return &Intent{Kind: KindScopedRetrieval, TableFilter: msg.Table}
			}
			return nil
		},
	},
	{
		name: "data orders text-to-sql",
		match: func(msg *normalizer.NormalizedMessage) *Intent {
			if dataOrdersWords.MatchString(msg.Text) {
				return &Intent{Kind: KindTextToSQL, TableFilter: constant.TableDataOrders}
			}
			return nil
		},
	},
}

// Classify selects the answering strategy for a normalized message. It is
// total: when no rule matches, the message falls through to open retrieval.
func Classify(msg *normalizer.NormalizedMessage) *Intent {
	for _, r := range rules {
		if intent := r.match(msg); intent != nil {
			return intent
		}
	}
	return &Intent{Kind: KindOpenRetrieval}
}
