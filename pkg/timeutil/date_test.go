package timeutil

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	now := time.Date(2024, time.March, 30, 18, 45, 0, 0, time.UTC)
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "today", want: time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC)},
		{in: " Tomorrow ", want: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)},
		{in: "+3d", want: time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)},
		{in: "+1w", want: time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC)},
		{in: "05/04/2024", want: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)},
		{in: "2024-04-05", wantErr: true},
		{in: "+soon", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ResolveDate(tt.in, "02/01/2006", now)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ResolveDate(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveDate(%q) error = %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ResolveDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, time.March, 30, 23, 0, 0, 0, time.UTC)
	if got := DaysUntil(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), now); got != 2 {
		t.Errorf("DaysUntil() = %d, want 2", got)
	}
	if got := DaysUntil(time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC), now); got != -2 {
		t.Errorf("DaysUntil(overdue) = %d, want -2", got)
	}
}
