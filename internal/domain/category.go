package domain

import (
	"strings"
	"time"
)

// Category is a named bucket a user logs activities against. Names are
// unique per user; a category cannot be deleted while any activity, habit
// or task references it.
type Category struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
