// Package catalog holds the static B.Sc. Computer Science course layout:
// six semesters, each with a fixed set of subjects. It is read-only and
// defines which (semester, subject) pairs content queries may use.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownSemester = errors.New("unknown semester")
	ErrUnknownSubject  = errors.New("unknown subject")
)

type Subject struct {
	Key         string
	Title       string
	Code        string
	Icon        string
	Description string
}

type Semester struct {
	Number   int
	Title    string
	Subjects []Subject
}

// Subject looks a subject up by key within the semester.
func (s Semester) Subject(key string) (Subject, bool) {
	for _, sub := range s.Subjects {
		if sub.Key == key {
			return sub, true
		}
	}
	return Subject{}, false
}

// Catalog is an immutable semester → subjects mapping.
type Catalog struct {
	semesters map[int]Semester
}

// New builds a catalog from the given semesters. The slices are copied.
func New(semesters ...Semester) *Catalog {
	c := &Catalog{semesters: make(map[int]Semester, len(semesters))}
	for _, s := range semesters {
		subjects := make([]Subject, len(s.Subjects))
		copy(subjects, s.Subjects)
		s.Subjects = subjects
		c.semesters[s.Number] = s
	}
	return c
}

// Semesters returns all semesters ordered by number.
func (c *Catalog) Semesters() []Semester {
	out := make([]Semester, 0, len(c.semesters))
	for _, s := range c.semesters {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (c *Catalog) Semester(n int) (Semester, error) {
	s, ok := c.semesters[n]
	if !ok {
		return Semester{}, fmt.Errorf("%w: %d", ErrUnknownSemester, n)
	}
	return s, nil
}

func (c *Catalog) Subject(semester int, key string) (Subject, error) {
	s, err := c.Semester(semester)
	if err != nil {
		return Subject{}, err
	}
	sub, ok := s.Subject(key)
	if !ok {
		return Subject{}, fmt.Errorf("%w: %q in semester %d", ErrUnknownSubject, key, semester)
	}
	return sub, nil
}

// Validate checks a (semester, subject) pair. An empty subject only
// validates the semester, which is how cross-subject queries are routed.
func (c *Catalog) Validate(semester int, subject string) error {
	if subject == "" {
		_, err := c.Semester(semester)
		return err
	}
	_, err := c.Subject(semester, subject)
	return err
}

// FindSubjectKeyByTitle returns the key of the first subject, in semester
// order, whose title matches exactly.
func (c *Catalog) FindSubjectKeyByTitle(title string) (string, bool) {
	for _, s := range c.Semesters() {
		for _, sub := range s.Subjects {
			if sub.Title == title {
				return sub.Key, true
			}
		}
	}
	return "", false
}

// SubjectTitle returns the subject's title, or the key itself when the
// subject is not part of the given semester.
func (c *Catalog) SubjectTitle(key string, semester int) string {
	if sub, err := c.Subject(semester, key); err == nil {
		return sub.Title
	}
	return key
}
