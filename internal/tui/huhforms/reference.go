package huhforms

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dacite/internal/models"
	"github.com/thenoetrevino/dacite/internal/services/reference"
)

// ReferenceFormValues holds the values bound to the new-reference form
type ReferenceFormValues struct {
	Author   string
	Year     string
	Citation string
	DOI      string
	URL      string
}

// Reference converts the form values into a draft reference (ID 0)
func (v *ReferenceFormValues) Reference() (models.Reference, error) {
	year, err := parseYear(v.Year)
	if err != nil {
		return models.Reference{}, err
	}
	ref := models.Reference{
		PubYear: year,
		Author:  strings.TrimSpace(v.Author),
		Ref:     strings.TrimSpace(v.Citation),
		DOI:     strings.TrimSpace(v.DOI),
		URL:     strings.TrimSpace(v.URL),
	}
	if err := reference.Validate(ref); err != nil {
		return models.Reference{}, err
	}
	return ref, nil
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", reference.ErrInvalidYear, s)
	}
	if year < models.MinPubYear || year > models.MaxPubYear {
		return 0, reference.ErrInvalidYear
	}
	return year, nil
}

func notBlank(err error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return err
		}
		return nil
	}
}

// CreateReferenceForm creates a huh form for drafting a new reference
func CreateReferenceForm(values *ReferenceFormValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("author").
			Title("Author").
			Placeholder("Smith").
			Validate(notBlank(reference.ErrEmptyAuthor)).
			Value(&values.Author),

		huh.NewInput().
			Key("year").
			Title("Year").
			Placeholder("1990").
			CharLimit(4).
			Validate(func(s string) error {
				_, err := parseYear(s)
				return err
			}).
			Value(&values.Year),

		huh.NewText().
			Key("citation").
			Title("Citation").
			Placeholder("Smith, J. (1990). Title. Journal, 1(2), 3-4.").
			Lines(3).
			Validate(notBlank(reference.ErrEmptyCitation)).
			Value(&values.Citation),

		huh.NewInput().
			Key("doi").
			Title("DOI").
			Placeholder("optional").
			Value(&values.DOI),

		huh.NewInput().
			Key("url").
			Title("URL").
			Placeholder("optional").
			Validate(reference.ValidateURL).
			Value(&values.URL),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
