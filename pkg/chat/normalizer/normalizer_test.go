package normalizer

import (
	"testing"

	"warehouse-chat-be/internal/constant"
)

func TestNormalizeColumnSynonyms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantText string
	}{
		{
			name:     "order type",
			input:    "what is the order type of my shipment",
			wantText: "what is the " + CanonicalClassColumn + " of my shipment",
		},
		{
			name:     "order class",
			input:    "show me the order class",
			wantText: "show me the " + CanonicalClassColumn,
		},
		{
			name:     "shipment class",
			input:    "group by shipment class",
			wantText: "group by " + CanonicalClassColumn,
		},
		{
			name:     "bare type",
			input:    "which type moves the most",
			wantText: "which " + CanonicalClassColumn + " moves the most",
		},
		{
			name:     "bare class",
			input:    "filter by class please",
			wantText: "filter by " + CanonicalClassColumn + " please",
		},
		{
			name:     "no synonym untouched",
			input:    "cuantas ordenes pendientes hay",
			wantText: "cuantas ordenes pendientes hay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got.Text != tt.wantText {
				t.Errorf("Normalize(%q).Text = %q, want %q", tt.input, got.Text, tt.wantText)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"what is the order type of my shipment",
		"filter by class please",
		"show the order class and the type",
		"reportes del warehouse de boca para la semana 12 de 2024",
		"plain question without synonyms",
	}

	for _, input := range inputs {
		first := Normalize(input)
		second := Normalize(first.Text)
		if first.Text != second.Text {
			t.Errorf("not idempotent for %q:\n first  = %q\n second = %q", input, first.Text, second.Text)
		}
	}
}

func TestNormalizeWarehouseAliases(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantWarehouse string
	}{
		{"boca raton", "reportes de boca raton", constant.WarehouseBocaRaton},
		{"warehouse de boca", "dame el warehouse de boca", constant.WarehouseBocaRaton},
		{"warehouse 951", "el warehouse 951 por favor", constant.WarehouseBocaRaton},
		{"florida", "ventas en florida", constant.WarehouseBocaRaton},
		{"bare 951", "numeros del 951", constant.WarehouseBocaRaton},
		{"no warehouse", "cuantas ordenes hay", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got.Warehouse != tt.wantWarehouse {
				t.Errorf("Normalize(%q).Warehouse = %q, want %q", tt.input, got.Warehouse, tt.wantWarehouse)
			}
		})
	}
}

func TestNormalizeWeekYearDay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantWeek int
		wantYear int
		wantDay  int
	}{
		{"semana with colon", "reportes semana: 12", 12, 0, 0},
		{"week with dash", "report for week-7", 7, 0, 0},
		{"week and year", "semana 12 de 2024", 12, 2024, 0},
		{"year without week ignored", "resultados de 2024", 0, 0, 0},
		{"long number takes first two digits", "week 123", 12, 0, 0},
		{"spanish day", "el valor del miércoles", 0, 0, 3},
		{"english day", "value for friday", 0, 0, 5},
		{"no filters", "cuantas ordenes hay", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got.Week != tt.wantWeek || got.Year != tt.wantYear || got.DaySlot != tt.wantDay {
				t.Errorf("Normalize(%q) = week %d year %d day %d, want week %d year %d day %d",
					tt.input, got.Week, got.Year, got.DaySlot, tt.wantWeek, tt.wantYear, tt.wantDay)
			}
		})
	}
}

func TestNormalizeTableDetection(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTable string
	}{
		{"testdata keyword", "que hay en la tabla testdata", constant.TableTestData},
		{"test keyword", "datos de test", constant.TableTestData},
		{"datacard keyword", "informacion del datacard", constant.TableDataCardReport},
		{"dashboard keyword", "lo que muestra el dashboard", constant.TableDataCardReport},
		{"test wins over datacard", "test del dashboard", constant.TableTestData},
		{"no table", "cuantas ordenes hay", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got.Table != tt.wantTable {
				t.Errorf("Normalize(%q).Table = %q, want %q", tt.input, got.Table, tt.wantTable)
			}
		})
	}
}
