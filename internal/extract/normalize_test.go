package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already clean", "Nomor Kontrak 123", "Nomor Kontrak 123"},
		{"collapses whitespace runs", "a  \t b\n\nc", "a b c"},
		{"trims both ends", "  Berita Acara  ", "Berita Acara"},
		{"drops control characters", "a\x00b\x1fc", "abc"},
		{"newlines become single spaces", "Tanggal\nMulai:\n1 Maret 2023", "Tanggal Mulai: 1 Maret 2023"},
		{"only whitespace", " \t\n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "  Rp.\t500.000.000,-\nterbilang  "
	once := Normalize(in)
	assert.Equal(t, once, Normalize(once))
}
