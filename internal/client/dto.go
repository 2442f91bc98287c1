package client

import (
	"net/url"
	"strconv"
	"strings"
)

// PaperQuery narrows a paper fetch. Zero values are omitted from the
// request.
type PaperQuery struct {
	Conference string
	Year       int
	Keyword    string
	Limit      int
}

func (q PaperQuery) encode() string {
	values := url.Values{}
	if conference := strings.TrimSpace(q.Conference); conference != "" {
		values.Set("conference", conference)
	}
	if q.Year > 0 {
		values.Set("year", strconv.Itoa(q.Year))
	}
	if keyword := strings.TrimSpace(q.Keyword); keyword != "" {
		values.Set("keyword", keyword)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
