package options

import (
	"testing"

	"tableflip.dev/eventscout/pkg/api"
)

func TestFilterQuery(t *testing.T) {
	tests := []struct {
		name    string
		opts    FilterOptions
		home    string
		want    api.Query
		wantErr bool
	}{{
		name: "defaults to the configured city",
		opts: FilterOptions{},
		home: "Sydney",
		want: api.Query{City: "Sydney"},
	}, {
		name: "all clears the city",
		opts: FilterOptions{City: "all"},
		home: "Sydney",
		want: api.Query{},
	}, {
		name: "explicit city wins",
		opts: FilterOptions{City: "Melbourne"},
		home: "Sydney",
		want: api.Query{City: "Melbourne"},
	}, {
		name: "known status passes through",
		opts: FilterOptions{Status: "new"},
		home: "Sydney",
		want: api.Query{City: "Sydney", Status: api.StatusNew},
	}, {
		name:    "unknown status rejected",
		opts:    FilterOptions{Status: "fresh"},
		home:    "Sydney",
		wantErr: true,
	}, {
		name: "dates normalized to YYYY-MM-DD",
		opts: FilterOptions{From: "2026-9-1", To: "2026-12-24"},
		home: "Sydney",
		want: api.Query{City: "Sydney", StartDate: "2026-09-01", EndDate: "2026-12-24"},
	}, {
		name:    "garbage date rejected",
		opts:    FilterOptions{From: "whenever"},
		home:    "Sydney",
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Query(tt.home)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Query() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseDayShortForm(t *testing.T) {
	got, err := ParseDay("9/1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len("2026-09-01") {
		t.Fatalf("ParseDay(9/1) = %q, want a YYYY-MM-DD day", got)
	}
	if got[5:] != "09-01" {
		t.Fatalf("ParseDay(9/1) = %q, want month-day 09-01", got)
	}
}
