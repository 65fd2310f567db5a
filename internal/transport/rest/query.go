package rest

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/backoffice/internal/domain"
	"github.com/heartmarshall/backoffice/internal/service/listing"
)

// Query parameter names shared by the list and bulk endpoints.
const (
	paramSearch     = "search"
	paramStatus     = "status"
	paramSort       = "sort"
	paramLimit      = "limit"
	paramOffset     = "offset"
	paramPage       = "page"
	paramPopulate   = "populate"
	paramCategoryID = "category_id"
)

// parseListQuery converts list query parameters into a listing input.
// sort is "field" or "field:asc|desc"; populate is a comma-separated list.
func parseListQuery(entity domain.Entity, q url.Values) (listing.ListInput, error) {
	in := listing.ListInput{Entity: entity}
	var errs []domain.FieldError

	in.Search = optional(q, paramSearch)
	in.Status = optional(q, paramStatus)

	if v := q.Get(paramSort); v != "" {
		field, dir, _ := strings.Cut(v, ":")
		in.SortBy, in.SortOrder = field, dir
	}

	intParam := func(name string, dst *int) {
		v := q.Get(name)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: name, Message: "must be an integer"})
			return
		}
		*dst = n
	}
	intParam(paramLimit, &in.Limit)
	intParam(paramOffset, &in.Offset)
	intParam(paramPage, &in.Page)

	if v := q.Get(paramCategoryID); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			errs = append(errs, domain.FieldError{Field: paramCategoryID, Message: "must be a positive integer"})
		} else {
			in.CategoryID = &id
		}
	}

	for _, p := range strings.Split(q.Get(paramPopulate), ",") {
		if p = strings.TrimSpace(p); p != "" {
			in.Populate = append(in.Populate, p)
		}
	}

	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}
	return in, nil
}

func optional(q url.Values, name string) *string {
	v := strings.TrimSpace(q.Get(name))
	if v == "" {
		return nil
	}
	return &v
}
