package domain

import "time"

// Activity is a single logged unit of effort: the ledger from which all
// derived progress is computed. Date is a midnight-UTC calendar day;
// Duration is whole minutes.
type Activity struct {
	ID         string
	UserID     string
	CategoryID string
	Date       time.Time
	Duration   int
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a *Activity) Validate() error {
	if a.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}
