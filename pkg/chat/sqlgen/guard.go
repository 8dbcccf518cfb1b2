package sqlgen

import "strings"

// SanitizeStatement strips the markdown fences and trailing semicolon that
// models routinely wrap around generated SQL.
func SanitizeStatement(raw string) string {
	stmt := strings.TrimSpace(raw)
	stmt = strings.TrimPrefix(stmt, "```sql")
	stmt = strings.TrimPrefix(stmt, "```SQL")
	stmt = strings.TrimPrefix(stmt, "```")
	stmt = strings.TrimSuffix(stmt, "```")
	stmt = strings.TrimSpace(stmt)
	stmt = strings.TrimSuffix(stmt, ";")
	return strings.TrimSpace(stmt)
}

// IsReadOnlySelect reports whether the sanitized statement is a single SELECT.
// Anything else, including multi-statement payloads smuggled in behind a
// semicolon, is rejected before it ever reaches the database.
func IsReadOnlySelect(stmt string) bool {
	trimmed := strings.TrimSpace(stmt)
	if trimmed == "" {
		return false
	}
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") {
		return false
	}
	return !strings.Contains(trimmed, ";")
}
