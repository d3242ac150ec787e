package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "zero", cents: 0, want: "0.00"},
		{name: "under a unit", cents: 99, want: "0.99"},
		{name: "no grouping needed", cents: 12345, want: "123.45"},
		{name: "grouped thousands", cents: 1234550, want: "12,345.50"},
		{name: "grouped millions", cents: 123456789, want: "1,234,567.89"},
		{name: "negative", cents: -1234550, want: "-12,345.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.cents))
		})
	}
}
