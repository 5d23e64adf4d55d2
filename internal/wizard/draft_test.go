package wizard

import (
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_StepNavigation(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, StepPersonalInfo, d.Step())

	d.Prev()
	assert.Equal(t, StepPersonalInfo, d.Step())

	err := d.Next()
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, StepPersonalInfo, d.Step())

	d.FirstName, d.LastName = "Bea", "Baker"
	require.NoError(t, d.Next())
	assert.Equal(t, StepEducation, d.Step())
	require.NoError(t, d.Next())
	assert.True(t, d.IsLastStep())
	require.NoError(t, d.Next())
	assert.Equal(t, StepPhotos, d.Step())

	d.Prev()
	assert.Equal(t, StepEducation, d.Step())
}

func TestDraft_Education(t *testing.T) {
	d := NewDraft()

	first := d.SaveEducation(EducationEntry{UniversityName: "City College", CourseName: "Baking"})
	second := d.SaveEducation(EducationEntry{UniversityName: "Le Cordon Bleu", CourseName: "Pastry"})
	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)

	d.SaveEducation(EducationEntry{ID: first, UniversityName: "City College", CourseName: "Bread", GraduationYear: "2018"})
	entries := d.Education()
	require.Len(t, entries, 2)
	assert.Equal(t, "Bread", entries[0].CourseName)
	assert.Equal(t, "Pastry", entries[1].CourseName)

	assert.True(t, d.RemoveEducation(first))
	assert.False(t, d.RemoveEducation(first))
	entries = d.Education()
	require.Len(t, entries, 1)
	assert.Equal(t, second, entries[0].ID)
}

func TestDraft_Photos(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.SetPhoto(2, "/photos/u/c.png"))
	require.NoError(t, d.SetPhoto(0, "/photos/u/a.png"))
	assert.Error(t, d.SetPhoto(3, "/photos/u/d.png"))
	assert.Error(t, d.SetPhoto(-1, "/photos/u/d.png"))

	assert.Equal(t, [3]string{"/photos/u/a.png", "", "/photos/u/c.png"}, d.Photos())

	require.NoError(t, d.SetPhoto(0, ""))
	assert.Equal(t, [3]string{"", "", "/photos/u/c.png"}, d.Photos())
}

func TestDraft_Build(t *testing.T) {
	d := NewDraft()
	d.FirstName, d.LastName = " Bea ", "Baker"
	d.BusinessName = "Bea's Buns"
	d.Specialties = []string{"bread"}
	d.SaveEducation(EducationEntry{UniversityName: "City College", CourseName: "Baking", GraduationYear: "2018"})
	require.NoError(t, d.SetPhoto(1, "/photos/u/b.png"))

	t.Run("baker", func(t *testing.T) {
		input := d.Build(entity.RoleBaker)

		assert.Equal(t, "Bea", input.FirstName)
		assert.Equal(t, []string{"/photos/u/b.png"}, input.Photos)
		assert.Equal(t, []usecase.EducationInput{{UniversityName: "City College", CourseName: "Baking", GraduationYear: "2018"}}, input.Education)
		require.NotNil(t, input.Baker)
		require.NotNil(t, input.Baker.BusinessName)
		assert.Equal(t, "Bea's Buns", *input.Baker.BusinessName)
		assert.Equal(t, []string{"bread"}, input.Baker.Specialties)
	})

	t.Run("customer drops business fields", func(t *testing.T) {
		input := d.Build(entity.RoleUser)

		assert.Nil(t, input.Baker)
	})

	t.Run("empty education stays empty", func(t *testing.T) {
		input := NewDraft().Build(entity.RoleUser)

		assert.NotNil(t, input.Education)
		assert.Empty(t, input.Education)
		assert.Empty(t, input.Photos)
	})
}

func TestFromProfile(t *testing.T) {
	entryID := uuid.New()
	profile := &entity.Profile{
		FirstName:   "Bea",
		LastName:    "Baker",
		Photos:      []string{"/photos/u/a.png", "/photos/u/b.png"},
		Specialties: []string{"bread"},
		Education:   []*entity.EducationEntry{{ID: entryID, UniversityName: "City College"}},
	}

	d := FromProfile(profile)

	assert.Equal(t, StepPersonalInfo, d.Step())
	assert.Equal(t, [3]string{"/photos/u/a.png", "/photos/u/b.png", ""}, d.Photos())
	require.Len(t, d.Education(), 1)
	assert.Equal(t, entryID.String(), d.Education()[0].ID)

	// Round trip keeps the stored education.
	input := d.Build(entity.RoleBaker)
	assert.Equal(t, "City College", input.Education[0].UniversityName)

	assert.Equal(t, StepPersonalInfo, FromProfile(nil).Step())
}
