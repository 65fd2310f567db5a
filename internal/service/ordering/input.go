package ordering

import (
	"fmt"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// ReorderInput holds the parameters for reordering a collection.
type ReorderInput struct {
	Entity domain.Entity
	Items  []domain.ReorderItem
}

// Validate checks all fields and collects all errors.
// Items must carry unique IDs and sorts that are exactly 1..N.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if !i.Entity.IsSortable() {
		errs = append(errs, domain.FieldError{Field: "entity", Message: fmt.Sprintf("%q is not sortable", i.Entity)})
	}

	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "required"})
	}
	if len(i.Items) > MaxReorderItems {
		errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("max %d items", MaxReorderItems)})
	}

	seenIDs := make(map[int64]bool, len(i.Items))
	seenSorts := make(map[int]bool, len(i.Items))
	for idx, item := range i.Items {
		if item.ID <= 0 {
			errs = append(errs, domain.FieldError{Field: fieldIndex(idx, "id"), Message: "required"})
		} else if seenIDs[item.ID] {
			errs = append(errs, domain.FieldError{Field: fieldIndex(idx, "id"), Message: fmt.Sprintf("duplicate id %d", item.ID)})
		}
		seenIDs[item.ID] = true

		if item.Sort < 1 || item.Sort > len(i.Items) {
			errs = append(errs, domain.FieldError{Field: fieldIndex(idx, "sort"), Message: fmt.Sprintf("must be in 1..%d", len(i.Items))})
		} else if seenSorts[item.Sort] {
			errs = append(errs, domain.FieldError{Field: fieldIndex(idx, "sort"), Message: fmt.Sprintf("duplicate sort %d", item.Sort)})
		}
		seenSorts[item.Sort] = true
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func fieldIndex(idx int, field string) string {
	return fmt.Sprintf("items[%d].%s", idx, field)
}
