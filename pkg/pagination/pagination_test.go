package pagination

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       Params
		wantPage int
		wantSize int
	}{
		{"zero values", Params{}, 1, DefaultPageSize},
		{"negative page", Params{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size", Params{Page: 2, PageSize: 500}, 2, MaxPageSize},
		{"in range", Params{Page: 4, PageSize: 50}, 4, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Page != tc.wantPage || got.PageSize != tc.wantSize {
				t.Fatalf("Normalize(%+v) = %+v", tc.in, got)
			}
		})
	}
}

func TestOffsetAndLimit(t *testing.T) {
	t.Parallel()

	p := Params{Page: 3, PageSize: 20}
	if p.Offset() != 40 {
		t.Fatalf("offset = %d", p.Offset())
	}
	if p.Limit() != 20 {
		t.Fatalf("limit = %d", p.Limit())
	}
}

func TestNewMeta(t *testing.T) {
	t.Parallel()

	meta := NewMeta(Params{}, 42)
	if meta.Page != 1 || meta.PageSize != DefaultPageSize || meta.TotalCount != 42 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}
