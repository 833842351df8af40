package domain

import (
	"strings"
	"time"
)

// Project is an optional grouping for habits and tasks. It carries no
// derived state; deleting a project detaches its habits and tasks.
type Project struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
