package sqlgen

import "testing"

func TestSanitizeStatement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain statement",
			input: "SELECT * FROM data_orders",
			want:  "SELECT * FROM data_orders",
		},
		{
			name:  "sql fence",
			input: "```sql\nSELECT id FROM data_orders\n```",
			want:  "SELECT id FROM data_orders",
		},
		{
			name:  "bare fence",
			input: "```\nSELECT 1\n```",
			want:  "SELECT 1",
		},
		{
			name:  "trailing semicolon",
			input: "SELECT 1;",
			want:  "SELECT 1",
		},
		{
			name:  "whitespace only",
			input: "   \n\t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeStatement(tt.input); got != tt.want {
				t.Errorf("SanitizeStatement(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsReadOnlySelect(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want bool
	}{
		{"simple select", "SELECT * FROM data_orders", true},
		{"lowercase select", "select count(*) from data_orders", true},
		{"empty", "", false},
		{"update", "UPDATE data_orders SET qty = 0", false},
		{"delete", "DELETE FROM data_orders", false},
		{"drop", "DROP TABLE data_orders", false},
		{"smuggled second statement", "SELECT 1; DROP TABLE data_orders", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReadOnlySelect(tt.stmt); got != tt.want {
				t.Errorf("IsReadOnlySelect(%q) = %v, want %v", tt.stmt, got, tt.want)
			}
		})
	}
}
