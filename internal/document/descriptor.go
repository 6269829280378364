package document

import "time"

// Type describes one document family: where it lives, which statuses it
// accepts, and how its header columns are written on update. Everything the
// generic repository and service need to know about a resource is in here.
type Type struct {
	Name  string // log/route name, singular: "issue"
	Label string // human label for messages: "Issue"

	Table             string
	IDColumn          string
	FinalizedAtColumn string

	ItemsTable     string
	ItemIDColumn   string
	ItemFKColumn   string
	ProductColumn  string
	QuantityColumn string

	Statuses    []string
	FinalStatus string

	HasVoucherFields bool
	HasBOMFields     bool
	HasWastage       bool

	// ItemModel returns a pointer to the concrete item type, used for
	// delete-by-header-id calls.
	ItemModel func() any

	// UpdateValues builds the header column assignments for an update. The
	// finalized timestamp is resolved by the service (monotonic rule)
	// before this is called; existing carries the stored row for fallbacks
	// such as the voucher date.
	UpdateValues func(doc Document, existing HeaderRow, finalizedAt *time.Time, now time.Time) map[string]any
}

// ValidStatus reports whether s is one of the type's allowed statuses.
func (t *Type) ValidStatus(s string) bool {
	for _, st := range t.Statuses {
		if s == st {
			return true
		}
	}
	return false
}
