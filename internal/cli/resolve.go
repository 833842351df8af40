package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// resolveCategoryID maps a user-supplied category name (or ID / ID prefix)
// to a category ID.
func resolveCategoryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("category is required")
	}

	categories, err := app.Categories.List(ctx, app.Config.UserID)
	if err != nil {
		return "", err
	}

	for _, c := range categories {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	for _, c := range categories {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range categories {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("category not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("category %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectID maps a user-supplied project name (or ID / ID prefix)
// to a project ID.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, app.Config.UserID)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveByPrefix picks the single ID matching the given prefix out of a
// candidate list.
func resolveByPrefix(ids []string, input, what string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", what)
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", what, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", what, input, len(matches))
	}
}

// parseDay parses a YYYY-MM-DD calendar day as midnight UTC.
func parseDay(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return d, nil
}

// shortID trims an ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
