package sqlgen

import (
	"fmt"
	"strings"
	"time"
)

// ConvertRows turns raw driver values into JSON-friendly records keyed by
// column name. Numeric and decimal columns arrive from the driver as []byte
// and become their textual form ("12.50"); date values with a zero clock
// render as plain dates.
func ConvertRows(columns []string, rows [][]interface{}) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			record[col] = convertValue(row[i])
		}
		records = append(records, record)
	}
	return records
}

func convertValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return string(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	default:
		return v
	}
}

// SerializeForPrompt renders records as "col: value" lines for the answer
// prompt, honoring both a row cap and a byte cap. The returned bool reports
// whether anything was cut. The caps apply only to the prompt text, never to
// the records handed back to the caller.
func SerializeForPrompt(records []map[string]interface{}, columns []string, rowCap, byteCap int) (string, bool) {
	truncated := false
	limit := len(records)
	if rowCap > 0 && limit > rowCap {
		limit = rowCap
		truncated = true
	}

	var sb strings.Builder
	for i := 0; i < limit; i++ {
		parts := make([]string, 0, len(columns))
		for _, col := range columns {
			parts = append(parts, fmt.Sprintf("%s: %v", col, renderCell(records[i][col])))
		}
		line := strings.Join(parts, ", ")
		if byteCap > 0 && sb.Len()+len(line)+1 > byteCap {
			truncated = true
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	out := sb.String()
	if truncated {
		out += "(resultados truncados)\n"
	}
	return out, truncated
}

func renderCell(value interface{}) interface{} {
	if value == nil {
		return "NULL"
	}
	return value
}
