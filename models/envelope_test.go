package models

import "testing"

// --- Pagination.TotalPages ---

func TestTotalPages_Arithmetic(t *testing.T) {
	cases := []struct {
		name     string
		count    int
		pageSize int
		want     int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single page", 3, 10, 1},
		{"empty collection floors at one", 0, 10, 1},
		{"zero page size floors at one", 50, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Pagination{Count: tc.count, PageSize: tc.pageSize}
			if got := p.TotalPages(); got != tc.want {
				t.Errorf("TotalPages() = %d, want %d", got, tc.want)
			}
		})
	}
}
