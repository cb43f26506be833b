package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Category is one of the fixed content tabs shown for a subject.
type Category string

const (
	CategoryTeacherNotes Category = "teacher-notes"
	CategoryStudentNotes Category = "student-notes"
	CategoryResources    Category = "resources"
	CategoryAssignments  Category = "assignments"
	CategoryPYQs         Category = "pyqs"
	CategorySyllabus     Category = "syllabus"
)

// Categories lists the tabs in display order.
var Categories = []Category{
	CategoryTeacherNotes,
	CategoryStudentNotes,
	CategoryResources,
	CategoryAssignments,
	CategoryPYQs,
	CategorySyllabus,
}

var categoryLabels = map[Category]string{
	CategoryTeacherNotes: "Teacher Notes",
	CategoryStudentNotes: "Student Notes",
	CategoryResources:    "Resources",
	CategoryAssignments:  "Assignments",
	CategoryPYQs:         "PYQs",
	CategorySyllabus:     "Syllabus",
}

// Label is the human-readable tab name.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory accepts the canonical key ("pyqs") or a few friendly
// spellings ("teacher", "previous", "Student Notes").
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")
	if c := Category(norm); c.Valid() {
		return c, nil
	}
	switch {
	case strings.Contains(norm, "teacher"):
		return CategoryTeacherNotes, nil
	case strings.Contains(norm, "student"):
		return CategoryStudentNotes, nil
	case strings.Contains(norm, "resource"):
		return CategoryResources, nil
	case strings.Contains(norm, "assignment"):
		return CategoryAssignments, nil
	case strings.Contains(norm, "pyq"), strings.Contains(norm, "previous"):
		return CategoryPYQs, nil
	case strings.Contains(norm, "syllabus"):
		return CategorySyllabus, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ContentItem is a read-only copy of a backend content record. An item
// without FileURL is metadata-only and cannot be downloaded.
type ContentItem struct {
	ID               string    `json:"id"`
	Semester         int       `json:"semester"`
	Subject          string    `json:"subject"`
	Category         Category  `json:"category"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Type             string    `json:"type"`
	Size             string    `json:"size"`
	CreatedAt        time.Time `json:"createdAt"`
	FileURL          string    `json:"fileUrl,omitempty"`
	OriginalFileName string    `json:"originalFileName,omitempty"`
}

// HasFile reports whether the item carries a downloadable file.
func (c ContentItem) HasFile() bool {
	return c.FileURL != ""
}

// wireContentItem tolerates the backend's loose typing: "_id" or "id",
// numeric or string semester and size.
type wireContentItem struct {
	ID               string          `json:"id"`
	MongoID          string          `json:"_id"`
	Semester         json.RawMessage `json:"semester"`
	Subject          string          `json:"subject"`
	Category         Category        `json:"category"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Type             string          `json:"type"`
	Size             json.RawMessage `json:"size"`
	CreatedAt        *time.Time      `json:"createdAt"`
	FileURL          string          `json:"fileUrl"`
	OriginalFileName string          `json:"originalFileName"`
}

func (c *ContentItem) UnmarshalJSON(b []byte) error {
	var w wireContentItem
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*c = ContentItem{
		ID:               w.ID,
		Subject:          w.Subject,
		Category:         w.Category,
		Title:            w.Title,
		Description:      w.Description,
		Type:             w.Type,
		FileURL:          w.FileURL,
		OriginalFileName: w.OriginalFileName,
	}
	if c.ID == "" {
		c.ID = w.MongoID
	}
	if w.CreatedAt != nil {
		c.CreatedAt = *w.CreatedAt
	}

	sem, err := looseInt(w.Semester)
	if err != nil {
		return fmt.Errorf("semester: %w", err)
	}
	c.Semester = sem

	size, err := looseString(w.Size)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	c.Size = size
	return nil
}

func looseInt(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

func looseString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	if bytes, err := n.Int64(); err == nil {
		return FormatSize(bytes), nil
	}
	return n.String(), nil
}

// ContentQuery filters content lists. Zero fields are left out of the
// request, so a query with only Semester and Category spans all subjects.
type ContentQuery struct {
	Semester int
	Subject  string
	Category Category
}

// Values renders the query as URL parameters.
func (q ContentQuery) Values() url.Values {
	v := url.Values{}
	if q.Semester > 0 {
		v.Set("semester", strconv.Itoa(q.Semester))
	}
	if q.Subject != "" {
		v.Set("subject", q.Subject)
	}
	if q.Category != "" {
		v.Set("category", string(q.Category))
	}
	return v
}

// Key identifies the query in the local content cache.
func (q ContentQuery) Key() string {
	return fmt.Sprintf("%d|%s|%s", q.Semester, q.Subject, q.Category)
}

// NewContent is the JSON body for registering a metadata-only item.
type NewContent struct {
	Semester    int      `json:"semester"`
	Subject     string   `json:"subject"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
}

// UnknownSize is sent when a metadata-only item has no size.
const UnknownSize = "Unknown size"
