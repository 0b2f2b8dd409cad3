package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate_LongForm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"indonesian full month", "17 Agustus 2023", date(2023, time.August, 17)},
		{"english full month", "17 August 2023", date(2023, time.August, 17)},
		{"abbreviated month", "3 Okt 2022", date(2022, time.October, 3)},
		{"abbreviated with period", "3 Okt. 2022", date(2022, time.October, 3)},
		{"nopember variant", "12 Nopember 2021", date(2021, time.November, 12)},
		{"pebruari variant", "28 Pebruari 2020", date(2020, time.February, 28)},
		{"two-digit year", "3 Mei 21", date(2021, time.May, 3)},
		{"garbled month ending", "17 Agustxs 2023", date(2023, time.August, 17)},
		{"embedded in sentence", "pada hari ini tanggal 1 Maret 2023 telah disepakati", date(2023, time.March, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseDate_ISO(t *testing.T) {
	got := ParseDate("periode 2023-08-17 sampai selesai")
	require.NotNil(t, got)
	assert.Equal(t, date(2023, time.August, 17), *got)
}

func TestParseDate_NumericDayFirst(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"slashes", "17/08/2023", date(2023, time.August, 17)},
		{"periods", "01.03.2023", date(2023, time.March, 1)},
		{"dashes", "5-6-2023", date(2023, time.June, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseDate_CenturyInference(t *testing.T) {
	low := ParseDate("05/06/69")
	require.NotNil(t, low)
	assert.Equal(t, 2069, low.Year())

	high := ParseDate("05/06/70")
	require.NotNil(t, high)
	assert.Equal(t, 1970, high.Year())

	long := ParseDate("12 Des 99")
	require.NotNil(t, long)
	assert.Equal(t, 1999, long.Year())
}

func TestParseDate_NoDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"prose only", "tidak ada tanggal di sini"},
		{"overflowing day", "31 Februari 2023"},
		{"unknown month word", "17 Xyzzyq 2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseDate(tt.in))
		})
	}
}

func TestParseDate_FirstLongFormWins(t *testing.T) {
	got := ParseDate("ditandatangani 1 Maret 2023, berakhir 30 Mei 2023")
	require.NotNil(t, got)
	assert.Equal(t, date(2023, time.March, 1), *got)
}
