package cart

import "testing"

func TestDiscountPercentNonPositiveListTotal(t *testing.T) {
	t.Parallel()

	for _, listTotal := range []int{0, -1, -10000} {
		if got := DiscountPercent(listTotal, 5000); got != 0 {
			t.Fatalf("expected 0 for list total %d, got %d", listTotal, got)
		}
	}
}

func TestDiscountPercentTruncatesTowardZero(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		listTotal    int
		sellingTotal int
		want         int
	}{
		{"no discount", 10000, 10000, 0},
		{"twenty percent", 20000, 16000, 20},
		{"one third truncates", 30000, 20000, 33},
		{"two sevenths truncates", 700, 500, 28},
		{"full discount", 10000, 0, 100},
		{"tiny totals", 3, 2, 33},
		{"selling above list", 10000, 15000, -50},
		{"negative fraction truncates toward zero", 300, 301, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DiscountPercent(tc.listTotal, tc.sellingTotal); got != tc.want {
				t.Fatalf("DiscountPercent(%d, %d) = %d, want %d", tc.listTotal, tc.sellingTotal, got, tc.want)
			}
		})
	}
}
