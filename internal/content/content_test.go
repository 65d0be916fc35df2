package content

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperiences_LiteralOrderAndCounts(t *testing.T) {
	list := Experiences()
	require.Len(t, list, 2)
	assert.Equal(t, 1001, list[0].ID)
	assert.Equal(t, 1002, list[1].ID)
	assert.Len(t, list[0].Responsibilities, 7)
	assert.Len(t, list[1].Responsibilities, 8)
	assert.Equal(t, "Paytm / Paytm Money", list[0].Company)
}

func TestExperiences_ReturnsCopy(t *testing.T) {
	list := Experiences()
	list[0].Responsibilities[0] = "mutated"
	list[0].Title = "mutated"

	again := Experiences()
	assert.NotEqual(t, "mutated", again[0].Responsibilities[0])
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestExperienceByID(t *testing.T) {
	e, err := ExperienceByID(1002)
	require.NoError(t, err)
	assert.Equal(t, "ITC Infotech", e.Company)

	_, err = ExperienceByID(42)
	assert.True(t, errors.Is(err, ErrUnknownExperience))
}

func TestValidate_DuplicateIDs(t *testing.T) {
	err := validate([]Experience{{ID: 1}, {ID: 2}, {ID: 1}})
	assert.Error(t, err)
	assert.NoError(t, validate(Experiences()))
}

func TestSkills_Order(t *testing.T) {
	got := Skills()
	require.Len(t, got, 11)
	assert.Equal(t, "AI Assisted Dev", got[0])
	assert.Equal(t, "CI/CD", got[len(got)-1])
}

func TestResumeLists(t *testing.T) {
	wantEdu := []Entry{
		{Title: "PG Diploma in Mobile Computing", Subtitle: "CDAC, Bengaluru • 2016"},
		{Title: "B.Tech Computer Science", Subtitle: "Bharat Institute of Technology, Meerut • 2015"},
	}
	if diff := cmp.Diff(wantEdu, Education()); diff != "" {
		t.Errorf("Education() mismatch (-want +got):\n%s", diff)
	}

	titles := make([]string, 0, 3)
	for _, a := range Awards() {
		titles = append(titles, a.Title)
	}
	if diff := cmp.Diff([]string{"Rockstar", "Hall of Fame", "Best Associate IT Consultant"}, titles); diff != "" {
		t.Errorf("Awards() titles mismatch (-want +got):\n%s", diff)
	}
}

func TestActions_ExactTargets(t *testing.T) {
	acts := Actions()
	require.Len(t, acts, 3)
	assert.Equal(t, "mailto:tyagiashish056@gmail.com", acts[0].Target)
	assert.Equal(t, ActionMail, acts[0].Kind)
	assert.Equal(t, "https://www.linkedin.com/in/ashish-tyagi-9a875292", acts[1].Target)
	assert.Equal(t, "https://github.com", acts[2].Target)

	a, ok := ActionByKey("l")
	require.True(t, ok)
	assert.Equal(t, "LinkedIn", a.Label)
	_, ok = ActionByKey("x")
	assert.False(t, ok)
}
