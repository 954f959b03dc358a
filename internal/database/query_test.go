package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
		want    string
	}{
		{
			name:    "explicit columns",
			table:   "Items",
			columns: []string{"ID", "Name"},
			want:    "SELECT [ID], [Name] FROM [Items]",
		},
		{
			name:  "no columns selects star",
			table: "Items",
			want:  "SELECT * FROM [Items]",
		},
		{
			name:    "single column",
			table:   "Orders",
			columns: []string{"Total"},
			want:    "SELECT [Total] FROM [Orders]",
		},
		{
			name:    "reserved word survives bracketing",
			table:   "Order",
			columns: []string{"Select"},
			want:    "SELECT [Select] FROM [Order]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSelect(tt.table, tt.columns...))
		})
	}
}

func TestSelectBuilderFluent(t *testing.T) {
	sql := Select("Items").Columns("ID", "Name").Build()
	assert.Equal(t, "SELECT [ID], [Name] FROM [Items]", sql)

	sql = Select("Items").Build()
	assert.Equal(t, "SELECT * FROM [Items]", sql)
}
