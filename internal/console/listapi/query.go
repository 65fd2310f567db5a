package listapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// Query holds the filter, sort and pagination parameters of a list view.
// Zero values are omitted from the encoded query; Limit -1 requests the
// whole collection.
type Query struct {
	Search     string
	Status     string
	Sort       string // "field" or "field:asc|desc"
	CategoryID int64
	Populate   []string
	Limit      int
	Offset     int
	Page       int
}

// Unbounded returns a query for the whole, unfiltered collection, the view a
// reorder operates on.
func Unbounded() Query {
	return Query{Limit: domain.UnboundedLimit}
}

// IsSortable reports whether rows shown for this query may be dragged.
func (q Query) IsSortable() bool {
	return q.Search == "" && q.Status == ""
}

// WithoutPagination returns a copy with limit, offset and page cleared.
func (q Query) WithoutPagination() Query {
	q.Limit, q.Offset, q.Page = 0, 0, 0
	q.Populate = append([]string(nil), q.Populate...)
	return q
}

// Values encodes the query for a request URL.
func (q Query) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	setInt := func(key string, n int) {
		if n != 0 {
			v.Set(key, strconv.Itoa(n))
		}
	}

	set("search", q.Search)
	set("status", q.Status)
	set("sort", q.Sort)
	if q.CategoryID != 0 {
		v.Set("category_id", strconv.FormatInt(q.CategoryID, 10))
	}
	if len(q.Populate) > 0 {
		v.Set("populate", strings.Join(q.Populate, ","))
	}
	setInt("limit", q.Limit)
	setInt("offset", q.Offset)
	setInt("page", q.Page)
	return v
}

// Filter returns only the filtering part of the query, the parameters a bulk
// action in All mode forwards to the server.
func (q Query) Filter() url.Values {
	return Query{Search: q.Search, Status: q.Status, CategoryID: q.CategoryID}.Values()
}
