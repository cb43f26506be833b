package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()
	sems := c.Semesters()
	require.Len(t, sems, 6)
	for i, s := range sems {
		assert.Equal(t, i+1, s.Number)
		assert.NotEmpty(t, s.Subjects)
	}

	s6, err := c.Semester(6)
	require.NoError(t, err)
	assert.Len(t, s6.Subjects, 6)
}

func TestSubject_Lookup(t *testing.T) {
	c := Default()

	sub, err := c.Subject(3, "algorithms")
	require.NoError(t, err)
	assert.Equal(t, "Algorithm Analysis", sub.Title)
	assert.Equal(t, "CSC303", sub.Code)

	_, err = c.Subject(3, "physics")
	require.ErrorIs(t, err, ErrUnknownSubject)

	_, err = c.Subject(9, "physics")
	require.ErrorIs(t, err, ErrUnknownSemester)
}

func TestValidate(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate(1, "physics"))
	require.NoError(t, c.Validate(2, ""))
	require.ErrorIs(t, c.Validate(7, ""), ErrUnknownSemester)
	require.ErrorIs(t, c.Validate(1, "algorithms"), ErrUnknownSubject)
}

func TestFindSubjectKeyByTitle(t *testing.T) {
	c := Default()

	key, ok := c.FindSubjectKeyByTitle("Cloud Computing")
	require.True(t, ok)
	assert.Equal(t, "cloud-computing", key)

	_, ok = c.FindSubjectKeyByTitle("cloud computing")
	assert.False(t, ok, "match is exact")
}

func TestSubjectTitle_FallsBackToKey(t *testing.T) {
	c := Default()
	assert.Equal(t, "Data Mining", c.SubjectTitle("data-mining", 6))
	assert.Equal(t, "data-mining", c.SubjectTitle("data-mining", 1))
}

func TestNew_CopiesSubjects(t *testing.T) {
	subjects := []Subject{{Key: "a", Title: "A"}}
	c := New(Semester{Number: 1, Title: "One", Subjects: subjects})
	subjects[0].Title = "mutated"

	sub, err := c.Subject(1, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", sub.Title)
}
