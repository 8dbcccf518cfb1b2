package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"warehouse-chat-be/internal/constant"
)

// NormalizedMessage is the canonical form of an inbound question. Downstream
// stages read it, never mutate it.
type NormalizedMessage struct {
	Text      string
	Table     string // detected fixed table, "" when none
	Warehouse string // canonical warehouse id, "" when none
	Week      int    // 0 when none
	Year      int    // 0 when none
	DaySlot   int    // 1 (Monday) .. 7 (Sunday), 0 when none
}

// CanonicalClassColumn is the real column name behind the "type"/"class"
// synonyms users write
const CanonicalClassColumn = "order or shipment class type"

// columnSynonyms are replaced in order: longer phrases first so "order class"
// is consumed before the bare "class"
var columnSynonyms = []struct {
	pattern   *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)\border type\b`), CanonicalClassColumn},
	{regexp.MustCompile(`(?i)\border class\b`), CanonicalClassColumn},
	{regexp.MustCompile(`(?i)\bshipment class\b`), CanonicalClassColumn},
	{regexp.MustCompile(`(?i)\btype\b`), CanonicalClassColumn},
	{regexp.MustCompile(`(?i)\bclass\b`), CanonicalClassColumn},
}

// canonicalClassPattern masks phrases that are already canonical so a second
// normalization pass cannot rewrite words inside them
var canonicalClassPattern = regexp.MustCompile(`(?i)\border or shipment class type\b`)

const classPlaceholder = "\x00column\x00"

// Warehouse aliases must match the ones used at ingestion time. Scanned in
// slice order, longest alias first; the first hit wins.
var warehouseAliases = []struct {
	pattern   *regexp.Regexp
	warehouse string
}{
	{regexp.MustCompile(`(?i)\bboca raton warehouse\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bwarehouse de florida\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bwarehouse del 951\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bwarehouse de boca\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bboca warehouse\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bwarehouse boca\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bwarehouse 951\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bwarehouse 10\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bboca raton\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bflorida\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\bboca\b`), constant.WarehouseBocaRaton},
	{regexp.MustCompile(`(?i)\b951\b`), constant.WarehouseBocaRaton},
}

// dayPatterns map weekday names (English and Spanish) to day slots 1-7,
// matching the day1_value..day7_value report columns
var dayPatterns = []struct {
	pattern *regexp.Regexp
	slot    int
}{
	{regexp.MustCompile(`(?i)\b(monday|lunes)\b`), 1},
	{regexp.MustCompile(`(?i)\b(tuesday|martes)\b`), 2},
	{regexp.MustCompile(`(?i)\b(wednesday|mi[ée]rcoles)\b`), 3},
	{regexp.MustCompile(`(?i)\b(thursday|jueves)\b`), 4},
	{regexp.MustCompile(`(?i)\b(friday|viernes)\b`), 5},
	{regexp.MustCompile(`(?i)\b(saturday|s[áa]bado)\b`), 6},
	{regexp.MustCompile(`(?i)\b(sunday|domingo)\b`), 7},
}

var (
	weekPattern = regexp.MustCompile(`(?i)\b(?:week|semana)[\s:-]*(\d{1,2})`)
	yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

	testTablePattern     = regexp.MustCompile(`(?i)\bdata_testdata\b|\b(test|testing|testdata)\b`)
	dataCardTablePattern = regexp.MustCompile(`(?i)\bdata_datacardreport\b|\b(data ?card|datacardreport|datacard|dashboard|reporte|report|estadistica|section|day[1-7]_value)\b`)
)

// Normalize rewrites domain synonyms to canonical terms and extracts the
// warehouse / week / year / day filters mentioned in the question.
// Pure and idempotent: Normalize(Normalize(x).Text) yields the same value.
func Normalize(raw string) *NormalizedMessage {
	text := strings.TrimSpace(raw)

	// Mask already-canonical column phrases, substitute synonyms, unmask
	text = canonicalClassPattern.ReplaceAllString(text, classPlaceholder)
	for _, syn := range columnSynonyms {
		text = syn.pattern.ReplaceAllString(text, classPlaceholder)
	}
	text = strings.ReplaceAll(text, classPlaceholder, CanonicalClassColumn)

	msg := &NormalizedMessage{Text: text}

	for _, alias := range warehouseAliases {
		if alias.pattern.MatchString(text) {
			msg.Warehouse = alias.warehouse
			break
		}
	}

	for _, day := range dayPatterns {
		if day.pattern.MatchString(text) {
			msg.DaySlot = day.slot
			break
		}
	}

	if m := weekPattern.FindStringSubmatch(text); m != nil {
		if week, err := strconv.Atoi(m[1]); err == nil {
			msg.Week = week
		}
		// A year only makes sense next to a week mention
		if y := yearPattern.FindStringSubmatch(text); y != nil {
			if year, err := strconv.Atoi(y[1]); err == nil {
				msg.Year = year
			}
		}
	}

	if testTablePattern.MatchString(text) {
		msg.Table = constant.TableTestData
	} else if dataCardTablePattern.MatchString(text) {
		msg.Table = constant.TableDataCardReport
	}

	return msg
}
