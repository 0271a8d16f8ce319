package customize

import (
	"craftpress/internal/domain"
)

// GenderUnisex is the sentinel restriction value that matches any
// current gender.
const GenderUnisex = "unisex"

// FilterOptionsByGender filters a select field's options against a
// previously chosen gender (e.g. hairstyles against the selected
// body). An option survives when it declares no restriction list,
// when its list contains the current gender, or when its list
// contains the unisex sentinel.
func FilterOptionsByGender(opts []domain.FieldOption, gender string) []domain.FieldOption {
	out := make([]domain.FieldOption, 0, len(opts))
	for _, opt := range opts {
		if genderAllows(optionGenders(opt), gender) {
			out = append(out, opt)
		}
	}
	return out
}

func genderAllows(restriction []string, gender string) bool {
	if len(restriction) == 0 {
		return true
	}
	for _, g := range restriction {
		if g == gender || g == GenderUnisex {
			return true
		}
	}
	return false
}

// optionGenders reads the optional forGender restriction list from
// the option's metadata.
func optionGenders(opt domain.FieldOption) []string {
	raw, ok := opt.Metadata()["forGender"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	}
	return nil
}
