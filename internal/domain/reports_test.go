package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportPeriod_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		period ReportPeriod
		want   bool
	}{
		{"valid period", ReportPeriod{Year: 2025, Month: 10}, true},
		{"january", ReportPeriod{Year: 2025, Month: 1}, true},
		{"december", ReportPeriod{Year: 2025, Month: 12}, true},
		{"zero period", ReportPeriod{}, false},
		{"missing month", ReportPeriod{Year: 2025}, false},
		{"missing year", ReportPeriod{Month: 10}, false},
		{"month too large", ReportPeriod{Year: 2025, Month: 13}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.IsValid())
		})
	}
}
