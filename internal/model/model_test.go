package model

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSkillsYAMLShapes(t *testing.T) {
	t.Run("flat list becomes one category", func(t *testing.T) {
		var s Skills
		require.NoError(t, yaml.Unmarshal([]byte("[Go, SQL, Go, ' ']"), &s))
		assert.Equal(t, Skills{{Name: FlatCategory, Skills: []string{"Go", "SQL"}}}, s)
	})

	t.Run("mapping keeps category order", func(t *testing.T) {
		src := "Languages: [Go, Rust]\nDatabases: [Postgres]\nCloud: []\n"
		var s Skills
		require.NoError(t, yaml.Unmarshal([]byte(src), &s))
		require.Len(t, s, 3)
		assert.Equal(t, "Languages", s[0].Name)
		assert.Equal(t, "Databases", s[1].Name)
		assert.Equal(t, "Cloud", s[2].Name)
		assert.Empty(t, s[2].Skills)
	})

	t.Run("category objects", func(t *testing.T) {
		src := "- name: Tools\n  skills: [Docker]\n- name: Tools\n  skills: [Docker, Make]\n"
		var s Skills
		require.NoError(t, yaml.Unmarshal([]byte(src), &s))
		assert.Equal(t, Skills{{Name: "Tools", Skills: []string{"Docker", "Make"}}}, s)
	})
}

func TestSkillsJSONObjectOrder(t *testing.T) {
	var s Skills
	require.NoError(t, json.Unmarshal([]byte(`{"Zeta":["a"],"Alpha":["b","b"]}`), &s))
	assert.Equal(t, Skills{
		{Name: "Zeta", Skills: []string{"a"}},
		{Name: "Alpha", Skills: []string{"b"}},
	}, s)

	var flat Skills
	require.NoError(t, json.Unmarshal([]byte(`["Go",{"name":"Ops","skills":["k8s"]}]`), &flat))
	assert.Equal(t, []string{"Go", "k8s"}, flat.All())
	assert.Equal(t, 2, flat.Count())
}

func TestCloneIsIndependent(t *testing.T) {
	d := Empty()
	d.Education = append(d.Education, Education{ID: "1", Degree: "BS"})
	d.Skills = Skills{{Name: "Lang", Skills: []string{"Go"}}}

	c := d.Clone()
	c.Education[0].Degree = "MS"
	c.Skills[0].Skills[0] = "Rust"

	assert.Equal(t, "BS", d.Education[0].Degree)
	assert.Equal(t, "Go", d.Skills[0].Skills[0])
}

func TestDecodeYAML(t *testing.T) {
	src := `
personalInfo:
  name: Jane Doe
  title: Engineer
  email: jane@x.com
  phone: "555"
  location: NYC
summary: Builds things.
education:
  - degree: BS
    institution: MIT
    startYear: 2018
    endYear: 2022
skills: [Go]
`
	data, err := Decode([]byte(src), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", data.PersonalInfo.Name)
	require.Len(t, data.Education, 1)
	assert.Equal(t, "2018", data.Education[0].StartYear)
	assert.Equal(t, "", data.Education[0].StartMonth)
	assert.NotNil(t, data.Experience)
	assert.NotNil(t, data.Projects)
	assert.Equal(t, []string{"Go"}, data.Skills.All())
}

func TestDecodeJSONNumericYears(t *testing.T) {
	src := `{"experience":[{"title":"SRE","startYear":2020,"current":true,"description":"caf\u00e9"}]}`
	data, err := Decode([]byte(src), FormatJSON)
	require.NoError(t, err)
	require.Len(t, data.Experience, 1)
	assert.Equal(t, "2020", data.Experience[0].StartYear)
	assert.True(t, data.Experience[0].Current)
	assert.Equal(t, "café", data.Experience[0].Description)
}

func TestDecodeJSONEscapedSlash(t *testing.T) {
	data, err := Decode([]byte(`{"personalInfo":{"website":"https:\/\/jane.dev"}}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "https://jane.dev", data.PersonalInfo.Website)
}

func TestDecodeJSONKeepsCategoryOrder(t *testing.T) {
	src := `{"skills":{"Zeta":["a"],"Alpha":["b"]},"education":[{"degree":"BS","startYear":"2018","endYear":2022}]}`
	data, err := Decode([]byte(src), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, Skills{{Name: "Zeta", Skills: []string{"a"}}, {Name: "Alpha", Skills: []string{"b"}}}, data.Skills)
	require.Len(t, data.Education, 1)
	assert.Equal(t, "BS", data.Education[0].Degree)
	assert.Equal(t, "2018", data.Education[0].StartYear)
	assert.Equal(t, "2022", data.Education[0].EndYear)
	assert.Equal(t, "", data.Education[0].EndMonth)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte(`{"personalInfo":{"nickname":"JD"}}`), FormatJSON)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"summary":"hi","skills":{"Lang":["Go"]}}`), 0o644))

	data, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", data.Summary)
	assert.Equal(t, Skills{{Name: "Lang", Skills: []string{"Go"}}}, data.Skills)

	_, err = LoadFile(filepath.Join(dir, "resume.toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLookupTemplate(t *testing.T) {
	info, ok := LookupTemplate(TemplateCompact)
	require.True(t, ok)
	assert.Equal(t, "Compact Template", info.Name)

	_, ok = LookupTemplate("normal")
	assert.False(t, ok)
}
