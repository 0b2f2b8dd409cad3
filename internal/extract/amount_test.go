package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"indonesian grouping", "Rp 500.000.000", 500000000},
		{"grouping with trailing sentinel", "Rp. 500.000.000,-", 500000000},
		{"period thousands comma decimal", "Rp 1.250,75", 1250.75},
		{"comma thousands", "IDR 12,500,000", 12500000},
		{"plain digits", "750000", 750000},
		{"idr marker lowercase", "idr 2.500.000", 2500000},
		{"marker with period", "Rp. 1.000.000", 1000000},
		{"embedded words stripped", "sebesar Rp 42.000.000 (empat puluh dua juta)", 42000000},
		{"single digit", "Rp 5", 5},
		{"trailing period dropped", "1.234.567.", 1234567},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAmount(tt.in)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.0001)
		})
	}
}

func TestNormalizeAmount_NoValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"marker only", "Rp"},
		{"letters only", "tidak ada nilai"},
		{"separators only", "Rp ,.-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, NormalizeAmount(tt.in))
		})
	}
}
