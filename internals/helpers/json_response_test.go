package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"", 1, 20, 0},
		{"?page=3", 3, 20, 40},
		{"?page=2&per_page=10", 2, 10, 10},
		{"?limit=15", 1, 15, 0}, // older alias
		{"?per_page=5&limit=15", 1, 5, 0},
		{"?page=0&per_page=0", 1, 20, 0},
		{"?page=-2&per_page=-1", 1, 20, 0},
		{"?per_page=500", 1, 100, 0}, // clamped to max
		{"?page=abc&per_page=xyz", 1, 20, 0},
	}

	var got Paging
	app := fiber.New()
	app.Get("/paging", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/paging"+tc.query, nil)
		if _, err := app.Test(req); err != nil {
			t.Fatalf("request %q: %v", tc.query, err)
		}
		if got.Page != tc.wantPage || got.Limit != tc.wantLimit || got.Offset != tc.wantOffset {
			t.Errorf("ResolvePaging(%q) = page %d limit %d offset %d, want %d/%d/%d",
				tc.query, got.Page, got.Limit, got.Offset, tc.wantPage, tc.wantLimit, tc.wantOffset)
		}
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		total          int64
		page, perPage  int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{0, 1, 20, 1, false, false},
		{20, 1, 20, 1, false, false},
		{21, 1, 20, 2, true, false},
		{21, 2, 20, 2, false, true},
		{100, 3, 10, 10, true, true},
		{5, 1, 0, 1, false, false},  // per_page falls back to default
		{5, 0, 20, 1, false, false}, // page falls back to 1
	}

	for _, tc := range cases {
		got := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
		if got.TotalPages != tc.wantTotalPages || got.HasNext != tc.wantHasNext || got.HasPrev != tc.wantHasPrev {
			t.Errorf("BuildPaginationFromPage(%d, %d, %d) = pages %d next %v prev %v, want %d/%v/%v",
				tc.total, tc.page, tc.perPage,
				got.TotalPages, got.HasNext, got.HasPrev,
				tc.wantTotalPages, tc.wantHasNext, tc.wantHasPrev)
		}
		if got.Total != tc.total {
			t.Errorf("total = %d, want %d", got.Total, tc.total)
		}
	}
}
