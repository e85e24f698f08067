package portal

import (
	"net/url"
	"strconv"
)

// PageParams is the skip/limit window every list endpoint accepts.
type PageParams struct {
	Skip  int
	Limit int
}

func (p PageParams) values() url.Values {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}
