package api

import "testing"

func TestQueryEncode(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want string
	}{{
		name: "city status page limit only",
		q:    Query{City: "Sydney", Status: StatusNew, Page: 2, Limit: 50},
		want: "city=Sydney&status=new&page=2&limit=50",
	}, {
		name: "empty filters omitted entirely",
		q:    Query{City: "Sydney", Page: 1, Limit: 50},
		want: "city=Sydney&page=1&limit=50",
	}, {
		name: "no city when cleared",
		q:    Query{Page: 1, Limit: 50},
		want: "page=1&limit=50",
	}, {
		name: "all filters in insertion order",
		q: Query{
			City:      "Sydney",
			Keyword:   "jazz night",
			StartDate: "2026-09-01",
			EndDate:   "2026-09-30",
			Status:    StatusUpdated,
			Page:      3,
			Limit:     25,
		},
		want: "city=Sydney&keyword=jazz+night&startDate=2026-09-01&endDate=2026-09-30&status=updated&page=3&limit=25",
	}, {
		name: "zero paging normalized",
		q:    Query{City: "Sydney"},
		want: "city=Sydney&page=1&limit=50",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Encode(); got != tt.want {
				t.Fatalf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatsQueryDropsEverythingButCity(t *testing.T) {
	q := Query{
		City:      "Sydney",
		Keyword:   "festival",
		StartDate: "2026-01-01",
		Status:    StatusNew,
		Page:      4,
		Limit:     10,
	}
	sq := q.StatsQuery()
	if sq.City != "Sydney" {
		t.Fatalf("city = %q, want Sydney", sq.City)
	}
	if sq.Keyword != "" || sq.StartDate != "" || sq.EndDate != "" || sq.Status != "" {
		t.Fatalf("stats query kept filters: %#v", sq)
	}
}

func TestImportable(t *testing.T) {
	for _, s := range Statuses() {
		e := EventRecord{Status: s}
		want := s != StatusImported
		if e.Importable() != want {
			t.Errorf("Importable() for %q = %v, want %v", s, e.Importable(), want)
		}
	}
}
