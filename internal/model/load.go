package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported data file format")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadFile reads a resume data file used to prefill the wizard or to render
// in batch mode.
func LoadFile(path string) (ResumeData, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return ResumeData{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ResumeData{}, fmt.Errorf("read data file: %w", err)
	}
	data, err := Decode(b, f)
	if err != nil {
		return ResumeData{}, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Decode checks b against the schema and decodes it. Entries keep whatever
// ids the file carries; missing ids are left empty for the caller to assign.
func Decode(b []byte, f Format) (ResumeData, error) {
	var generic map[string]interface{}
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(b, &generic); err != nil {
			return ResumeData{}, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(b, &generic); err != nil {
			return ResumeData{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return ResumeData{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if generic == nil {
		generic = map[string]interface{}{}
	}
	if err := ValidateMap(generic); err != nil {
		return ResumeData{}, err
	}

	data := Empty()
	var err error
	if f == FormatJSON {
		err = json.Unmarshal(b, &data)
	} else {
		err = yaml.Unmarshal(b, &data)
	}
	if err != nil {
		return ResumeData{}, fmt.Errorf("decode %s: %w", f, err)
	}
	if data.Education == nil {
		data.Education = []Education{}
	}
	if data.Experience == nil {
		data.Experience = []Experience{}
	}
	if data.Projects == nil {
		data.Projects = []Project{}
	}
	if data.Skills == nil {
		data.Skills = Skills{}
	}
	return data, nil
}
