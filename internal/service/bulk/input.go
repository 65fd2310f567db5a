package bulk

import (
	"fmt"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// ApplyInput holds the parameters for a bulk action.
// Search and Status describe the active filter and are only read in All mode.
type ApplyInput struct {
	Entity domain.Entity
	Action domain.BulkAction
	Mode   domain.BulkMode
	IDs    []int64
	Search *string
	Status *string
}

// Validate checks all fields and collects all errors. maxSelected caps the
// id list of a Selected action.
func (i ApplyInput) Validate(maxSelected int) error {
	var errs []domain.FieldError

	if !i.Entity.IsLedger() {
		errs = append(errs, domain.FieldError{Field: "entity", Message: fmt.Sprintf("%q does not support bulk actions", i.Entity)})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: fmt.Sprintf("unknown action %q", i.Action)})
	}

	switch i.Mode {
	case domain.BulkModeSelected:
		if len(i.IDs) == 0 {
			errs = append(errs, domain.FieldError{Field: "ids", Message: "required in Selected mode"})
		}
		if len(i.IDs) > maxSelected {
			errs = append(errs, domain.FieldError{Field: "ids", Message: fmt.Sprintf("max %d ids", maxSelected)})
		}
		seen := make(map[int64]bool, len(i.IDs))
		for idx, id := range i.IDs {
			if id <= 0 {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("ids[%d]", idx), Message: "must be positive"})
			} else if seen[id] {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("ids[%d]", idx), Message: fmt.Sprintf("duplicate id %d", id)})
			}
			seen[id] = true
		}
	case domain.BulkModeAll:
		if len(i.IDs) > 0 {
			errs = append(errs, domain.FieldError{Field: "ids", Message: "not allowed in All mode"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be All or Selected"})
	}

	if i.Status != nil && *i.Status != "" && !domain.RecordStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("invalid value %q", *i.Status)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ApplyInput) filter() domain.ListFilter {
	return domain.ListFilter{Search: i.Search, Status: i.Status}
}
