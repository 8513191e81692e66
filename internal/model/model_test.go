package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", payload: `"2026-10-01"`, want: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", payload: `"2026-10-01T12:30:00Z"`, want: time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC)},
		{name: "null stays zero", payload: `null`},
		{name: "garbage", payload: `"next tuesday"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.payload), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, d.Time.Equal(tt.want))
		})
	}
}

func TestLoanStatusActive(t *testing.T) {
	require.True(t, LoanBorrowed.Active())
	require.True(t, LoanOverdue.Active())
	require.False(t, LoanReturned.Active())
	require.False(t, LoanRejected.Active())
}
