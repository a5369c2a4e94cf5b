package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var cfg struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"90s","b":1000000000}`), &cfg))
	assert.Equal(t, 90*time.Second, cfg.A.Duration)
	assert.Equal(t, time.Second, cfg.B.Duration)

	var bad Duration
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 2 * time.Minute})
	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}

func TestParseDayMonthYear(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "31/12/2024", want: "2024-12-31"},
		{in: "1/2/2025", want: "2025-02-01"},
		{in: " 05-03-2023 ", want: "2023-03-05"},
		{in: "05.03.2023", want: "2023-03-05"},
		{in: "15/11/2024 14:00", want: "2024-11-15"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDayMonthYear(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestParseDayMonthYear_Unknown(t *testing.T) {
	for _, in := range []string{"", "   ", "mañana", "31/31/2024", "12/2024", "2024-07-09", "2024-07-09 10:00:00"} {
		assert.Nil(t, ParseDayMonthYear(in), in)
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2024", FormatDate(&ts))
	assert.Equal(t, "07/03/2024 09:05", FormatDateTime(&ts))
	assert.Empty(t, FormatDate(nil))
	assert.Empty(t, FormatDateTime(nil))
}
