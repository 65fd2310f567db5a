package listing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// ListInput holds the parameters for listing a collection.
type ListInput struct {
	Entity     domain.Entity
	Search     *string
	Status     *string
	CategoryID *int64
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
	Page       int // 1-based; alternative to Offset
	Populate   []string
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.Entity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity", Message: fmt.Sprintf("unknown entity %q", i.Entity)})
		return domain.NewValidationErrors(errs)
	}

	if i.Status != nil && *i.Status != "" {
		valid := domain.ItemStatus(*i.Status).IsValid()
		if i.Entity.IsLedger() {
			valid = domain.RecordStatus(*i.Status).IsValid()
		}
		if !valid {
			errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("invalid value %q", *i.Status)})
		}
	}

	if i.CategoryID != nil && i.Entity != domain.EntityArticles {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "only supported for articles"})
	}

	if i.SortBy != "" && !slices.Contains(domain.SortFieldsFor(i.Entity), i.SortBy) {
		errs = append(errs, domain.FieldError{Field: "sort", Message: fmt.Sprintf("cannot sort by %q", i.SortBy)})
	}
	switch strings.ToLower(i.SortOrder) {
	case "", "asc", "desc":
	default:
		errs = append(errs, domain.FieldError{Field: "sort", Message: "order must be asc or desc"})
	}

	if i.Limit < domain.UnboundedLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be -1 or non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.Page > 0 && i.Offset > 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "cannot be combined with offset"})
	}
	if i.Page > 0 && i.Limit == domain.UnboundedLimit {
		errs = append(errs, domain.FieldError{Field: "page", Message: "cannot be combined with limit=-1"})
	}

	for _, rel := range i.Populate {
		if rel != RelationCategory || i.Entity != domain.EntityArticles {
			errs = append(errs, domain.FieldError{Field: "populate", Message: fmt.Sprintf("unknown relation %q", rel)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) filter(limit int) domain.ListFilter {
	return domain.ListFilter{
		Search:     i.Search,
		Status:     i.Status,
		CategoryID: i.CategoryID,
		SortBy:     i.SortBy,
		SortOrder:  i.SortOrder,
		Limit:      limit,
		Offset:     i.offset(limit),
		Populate:   i.Populate,
	}
}

func (i ListInput) offset(limit int) int {
	if i.Page > 0 {
		return (i.Page - 1) * limit
	}
	return i.Offset
}
