package models

// Quote is a motivational quote shown on the home and quotes screens.
type Quote struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// CategoryDetails holds the expanded information for a topic page.
type CategoryDetails struct {
	Causes   []string `json:"causes"`
	Symptoms []string `json:"symptoms"`
	Effects  []string `json:"effects"`
}

// Category is one mental-health topic in the content catalog.
type Category struct {
	ID          int             `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Details     CategoryDetails `json:"details"`
}

// CategorySummary is the list-view shape of a category (no details).
type CategorySummary struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Summary returns the list-view projection of c.
func (c Category) Summary() CategorySummary {
	return CategorySummary{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
	}
}
