package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Query holds the dashboard listing filters plus paging. Empty filter fields
// mean "no constraint" and are omitted from the encoded string entirely;
// page and limit are always sent.
type Query struct {
	City      string
	Keyword   string
	StartDate string
	EndDate   string
	Status    Status

	Page  int
	Limit int
}

// Normalize clamps paging to sane values.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 50
	}
	return q
}

// StatsQuery reduces the query to the subset the stats endpoint honors,
// which is the city filter only.
func (q Query) StatsQuery() Query {
	return Query{City: q.City, Page: 1, Limit: q.Limit}
}

// Encode renders the query string with parameters in a fixed order:
// city, keyword, startDate, endDate, status, page, limit. The order is part
// of the endpoint contract the server's tests were written against, so this
// does not use url.Values.Encode (which sorts keys).
func (q Query) Encode() string {
	q = q.Normalize()

	var b strings.Builder
	add := func(key, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	add("city", q.City)
	add("keyword", q.Keyword)
	add("startDate", q.StartDate)
	add("endDate", q.EndDate)
	add("status", string(q.Status))
	add("page", strconv.Itoa(q.Page))
	add("limit", strconv.Itoa(q.Limit))
	return b.String()
}
