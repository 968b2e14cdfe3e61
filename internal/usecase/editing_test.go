package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-wizard/internal/model"
)

func TestAddRemoveEntryRestoresList(t *testing.T) {
	orig := []model.Project{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}}

	added := AddProject(orig)
	require.Len(t, added, 3)
	assert.NotEmpty(t, added[2].ID)
	assert.NotEqual(t, added[2].ID, added[1].ID)
	assert.Len(t, orig, 2, "input is not modified")

	assert.Equal(t, orig, RemoveEntry(added, added[2].ID))
}

func TestAddEntryIDsAreUnique(t *testing.T) {
	var list []model.Education
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		list = AddEducation(list)
		id := list[len(list)-1].ID
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestRemoveEntry(t *testing.T) {
	list := []model.Experience{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, list, RemoveEntry(list, "missing"), "unknown id is a no-op")

	last := RemoveEntry(RemoveEntry(list, "a"), "b")
	assert.NotNil(t, last)
	assert.Empty(t, last, "the last entry may be removed")
}

func TestUpdateEntryTouchesOneField(t *testing.T) {
	list := []model.Education{
		{ID: "a", Degree: "BS", Institution: "MIT"},
		{ID: "b", Degree: "MS", Institution: "CMU"},
	}
	got := UpdateEducation(list, "b", FieldInstitution, "Stanford")

	assert.Equal(t, model.Education{ID: "a", Degree: "BS", Institution: "MIT"}, got[0])
	assert.Equal(t, model.Education{ID: "b", Degree: "MS", Institution: "Stanford"}, got[1])
	assert.Equal(t, "CMU", list[1].Institution)

	assert.Equal(t, list, UpdateEducation(list, "zzz", FieldDegree, "PhD"))
	assert.Equal(t, list, UpdateEducation(list, "a", FieldCompany, "ignored"), "field outside the entry")
}

func TestUpdateProject(t *testing.T) {
	list := AddProject(nil)
	id := list[0].ID
	list = UpdateProject(list, id, FieldLink, "github.com/jane/x")
	list = UpdateProject(list, id, FieldTitle, "x")
	assert.Equal(t, "github.com/jane/x", ProjectValue(list[0], FieldLink))
	assert.Equal(t, "x", ProjectValue(list[0], FieldTitle))
	assert.Equal(t, "", ProjectValue(list[0], FieldCompany))
}

func TestCurrentClearsEndDate(t *testing.T) {
	list := []model.Experience{{ID: "a", EndMonth: "May", EndYear: "2021"}}

	list = SetExperienceCurrent(list, "a", true)
	assert.True(t, list[0].Current)
	assert.Empty(t, list[0].EndMonth)
	assert.Empty(t, list[0].EndYear)

	list = UpdateExperience(list, "a", FieldEndYear, "2024")
	assert.Empty(t, ExperienceValue(list[0], FieldEndYear), "end date stays empty while current")

	list = SetExperienceCurrent(list, "a", false)
	list = UpdateExperience(list, "a", FieldEndYear, "2024")
	assert.Equal(t, "2024", list[0].EndYear)
}

func TestBulletizeDescription(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"first line\nsecond line", "• first line\n• second line"},
		{"• already\nnew", "• already\n• new"},
		{"•", ""},
		{"a\n\nb", "• a\n\n• b"},
		{"", ""},
	}
	for _, tt := range tests {
		got := BulletizeDescription(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, got, BulletizeDescription(got), "idempotent on %q", tt.in)
	}
}

func TestSkills(t *testing.T) {
	s, ok := AddSkill(model.Skills{}, "", "Go")
	require.True(t, ok)
	assert.Equal(t, model.Skills{{Name: model.FlatCategory, Skills: []string{"Go"}}}, s)

	again, ok := AddSkill(s, "", "Go")
	assert.False(t, ok)
	assert.Equal(t, s, again, "duplicate changes nothing")

	_, ok = AddSkill(s, "", "   ")
	assert.False(t, ok)

	s, ok = AddSkill(s, "", "go")
	assert.True(t, ok, "duplicates are case-sensitive")

	s, ok = AddCategory(s, " Tools ")
	require.True(t, ok)
	_, ok = AddCategory(s, "Tools")
	assert.False(t, ok)
	_, ok = AddCategory(s, "")
	assert.False(t, ok)

	s, _ = AddSkill(s, "Tools", "Docker")
	assert.Equal(t, 3, s.Count())

	s = RemoveSkill(s, model.FlatCategory, "go")
	assert.Equal(t, []string{"Go"}, s[s.Index(model.FlatCategory)].Skills)

	s = RemoveCategory(s, "Tools")
	assert.Equal(t, -1, s.Index("Tools"))
	assert.Equal(t, 1, s.Count())
}
