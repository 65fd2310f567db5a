package domain

// BulkMode selects the target set of a bulk action.
type BulkMode string

const (
	// BulkModeAll targets every record matching the active filter; the server
	// resolves the set itself.
	BulkModeAll BulkMode = "All"
	// BulkModeSelected targets an explicit list of record IDs.
	BulkModeSelected BulkMode = "Selected"
)

func (m BulkMode) String() string { return string(m) }

func (m BulkMode) IsValid() bool {
	switch m {
	case BulkModeAll, BulkModeSelected:
		return true
	}
	return false
}

// BulkAction names a server-side transition applied to ledger records.
type BulkAction string

const (
	BulkActionPay      BulkAction = "pay"
	BulkActionCancel   BulkAction = "cancel"
	BulkActionComplete BulkAction = "complete"
)

func (a BulkAction) String() string { return string(a) }

func (a BulkAction) IsValid() bool {
	switch a {
	case BulkActionPay, BulkActionCancel, BulkActionComplete:
		return true
	}
	return false
}

// Transition describes a status change performed by a bulk action.
type Transition struct {
	From RecordStatus
	To   RecordStatus
}

var transitions = map[Entity]map[BulkAction]Transition{
	EntityCommissions: {
		BulkActionPay:    {From: RecordStatusPending, To: RecordStatusPaid},
		BulkActionCancel: {From: RecordStatusPending, To: RecordStatusCancelled},
	},
	EntityOrders: {
		BulkActionComplete: {From: RecordStatusPending, To: RecordStatusCompleted},
		BulkActionCancel:   {From: RecordStatusPending, To: RecordStatusCancelled},
	},
}

// TransitionFor returns the status change the action performs on the entity.
// ok is false when the entity does not support the action.
func TransitionFor(e Entity, a BulkAction) (Transition, bool) {
	t, ok := transitions[e][a]
	return t, ok
}
