package repository

import "testing"

func TestBuildSortClause(t *testing.T) {
	tests := []struct {
		name string
		sort string
		want string
	}{
		{"single token", "price_asc", "price ASC"},
		{"multiple tokens keep order", "price_desc,name_asc", "price DESC, product_name ASC"},
		{"unknown tokens dropped", "bogus,price_asc", "price ASC"},
		{"whitespace tolerated", " newest , oldest ", "created_at DESC, created_at ASC"},
		{"all unknown falls back", "bogus,nonsense", "created_at DESC"},
		{"empty falls back", "", "created_at DESC"},
		{"name sorts", "name_desc", "product_name DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSortClause(tt.sort); got != tt.want {
				t.Errorf("buildSortClause(%q) = %q, want %q", tt.sort, got, tt.want)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, DefaultLimit},
		{"negative page", -3, 20, 1, 20},
		{"negative limit", 2, -5, 2, 1},
		{"limit above maximum", 1, 500, 1, MaxLimit},
		{"limit at maximum", 1, MaxLimit, 1, MaxLimit},
		{"normal values untouched", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := clampPage(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("clampPage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
