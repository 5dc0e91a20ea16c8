package prompt

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"

	"saif-rejection-agent/internal/rejection"
)

var errCompanyRequired = errors.New("company name is required")

func requireNonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errCompanyRequired
	}
	return nil
}

// Interview asks for the application fields in the order a reviewer reads an
// application and returns the assembled record.
func Interview(ctx context.Context, d Driver) (rejection.Application, error) {
	if err := d.Info(ctx, "\nEnter application details:"); err != nil {
		return rejection.Application{}, err
	}

	company, err := d.Input(ctx, InputConfig{Message: "Company Name:", Validator: requireNonBlank})
	if err != nil {
		return rejection.Application{}, err
	}
	company = strings.TrimSpace(company)
	if company == "" {
		return rejection.Application{}, errCompanyRequired
	}

	contact, err := d.Input(ctx, InputConfig{Message: "Contact Email:"})
	if err != nil {
		return rejection.Application{}, err
	}

	founders, err := d.Input(ctx, InputConfig{
		Message: "Founder Name(s) [leave blank if unknown]:",
		Help:    "Used in the greeting. Leave blank for \"Hi there,\".",
	})
	if err != nil {
		return rejection.Application{}, err
	}

	description, err := d.TextArea(ctx, TextAreaConfig{
		Message: "Company description (press Enter twice to finish):",
	})
	if err != nil {
		return rejection.Application{}, err
	}

	var menu bytes.Buffer
	menu.WriteString("\nAvailable rejection reasons:\n")
	if err := rejection.WriteCatalog(&menu); err != nil {
		return rejection.Application{}, err
	}
	if err := d.Info(ctx, strings.TrimRight(menu.String(), "\n")); err != nil {
		return rejection.Application{}, err
	}

	selection, err := d.Input(ctx, InputConfig{
		Message: "Enter rejection reason number(s), comma-separated:",
		Help:    "Only the first valid number selects the feedback paragraph.",
	})
	if err != nil {
		return rejection.Application{}, err
	}

	return rejection.NewApplication(
		company,
		strings.TrimSpace(contact),
		strings.TrimSpace(founders),
		description,
		ParseSelection(selection),
	), nil
}

// ParseSelection turns "1, 3,x,9" into catalog tags. Blank, non-numeric and
// out-of-range entries are dropped; order and duplicates are kept.
func ParseSelection(input string) []string {
	var tags []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		if r, ok := rejection.ReasonAt(n); ok {
			tags = append(tags, r.Tag())
		}
	}
	return tags
}
