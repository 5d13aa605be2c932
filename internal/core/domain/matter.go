package domain

// Matter is the slice of a legal matter the ledger needs to attribute entries.
type Matter struct {
	MatterID   string
	AdvocateID string
	ClientID   *string
	// RetainerID is the matter's active retainer agreement, if any.
	RetainerID *string
}
