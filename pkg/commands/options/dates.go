package options

import (
	"time"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutDay      = "2006-01-02"
)

// ParseDay accepts "2026-9-14" or "9/14" and returns the canonical
// YYYY-MM-DD form the listing endpoint expects. Empty in, empty out.
func ParseDay(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		// Let the year be the same.
		t, err = time.Parse(layoutISOShort, s)
		if err != nil {
			return "", err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return t.Format(layoutDay), nil
}
