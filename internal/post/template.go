package post

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTemplate is returned when no template has the requested title.
var ErrUnknownTemplate = errors.New("unknown template")

// Template is a reusable post skeleton.
type Template struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// templateFile is the layout of a YAML template library:
//
//	templates:
//	  - title: Hiring
//	    content: |
//	      We're hiring!
//	      #jobs
type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// BuiltinTemplates are always available.
var BuiltinTemplates = []Template{
	{Title: "Weekly Learnings", Content: "This week I learned some amazing lessons:\n1. \n2. \n3. \n#learning #growth"},
	{Title: "Project Launch", Content: "Excited to announce the launch of my project:\n[Project Name]\nCheck it out! #launch #productivity"},
	{Title: "Thank You Post", Content: "I want to thank everyone who supported me:\n- \n- \n- \n#gratitude #community"},
}

// LoadTemplates reads a YAML template library.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates %q: %w", path, err)
	}
	var f templateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse templates %q: %w", path, err)
	}
	for i, t := range f.Templates {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("parse templates %q: entry %d has no title", path, i+1)
		}
		f.Templates[i].Content = strings.TrimSuffix(t.Content, "\n")
	}
	return f.Templates, nil
}

// Library is the built-in templates plus any loaded from a file. A loaded
// template with a built-in's title replaces it.
type Library struct {
	templates []Template
}

// NewLibrary creates a library of the built-ins followed by extra.
func NewLibrary(extra []Template) *Library {
	l := &Library{templates: append([]Template(nil), BuiltinTemplates...)}
	for _, t := range extra {
		if i := l.index(t.Title); i >= 0 {
			l.templates[i] = t
			continue
		}
		l.templates = append(l.templates, t)
	}
	return l
}

func (l *Library) index(title string) int {
	for i, t := range l.templates {
		if strings.EqualFold(t.Title, strings.TrimSpace(title)) {
			return i
		}
	}
	return -1
}

// Find returns the template titled title, ignoring case.
func (l *Library) Find(title string) (Template, error) {
	if i := l.index(title); i >= 0 {
		return l.templates[i], nil
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, title)
}

// Titles lists the template titles in order.
func (l *Library) Titles() []string {
	out := make([]string, len(l.templates))
	for i, t := range l.templates {
		out[i] = t.Title
	}
	return out
}
