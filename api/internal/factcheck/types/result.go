package types

import "fmt"

// Source — citation the model claims supports or refutes the ad's claims.
// The link is not verified here; url is required, title is optional.
type Source struct {
	Title *string `json:"title"`
	URL   string  `json:"url"`
}

// FactCheckResult — the validated shape of one fact-check produced by the
// model for a single ad image. Nullable scalars stay pointers so the JSON
// output keeps explicit nulls instead of empty strings.
type FactCheckResult struct {
	ProductName     *string  `json:"productName"`
	Company         *string  `json:"company"`
	KeyNumbers      []string `json:"keyNumbers"`
	MeasurableFacts []string `json:"measurableFacts"`
	Category        *string  `json:"category"`
	BriefContext    *string  `json:"briefContext"`
	TruthScore      *int     `json:"truthScore"`
	Report          string   `json:"report"`
	Sources         []Source `json:"sources"`
}

// FieldError — one failing field path with a human-readable reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Reason }

// ValidateResult checks an arbitrary decoded JSON value against the
// fact-check contract and collects EVERY failing field, not just the first.
// Out-of-range truthScore is rejected here, never clamped; display-side
// clamping is the renderer's business. Pure function, no side effects.
func ValidateResult(candidate any) (FactCheckResult, []FieldError) {
	var res FactCheckResult
	var errs []FieldError

	obj, ok := candidate.(map[string]any)
	if !ok {
		return res, []FieldError{{Field: ".", Reason: "expected a JSON object"}}
	}

	res.ProductName, errs = nullableString(obj, "productName", errs)
	res.Company, errs = nullableString(obj, "company", errs)
	res.KeyNumbers, errs = stringArray(obj, "keyNumbers", errs)
	res.MeasurableFacts, errs = stringArray(obj, "measurableFacts", errs)
	res.Category, errs = nullableString(obj, "category", errs)
	res.BriefContext, errs = nullableString(obj, "briefContext", errs)

	// truthScore: null is fine, anything present must be an integer in [0,100].
	if v, present := obj["truthScore"]; present && v != nil {
		switch n := v.(type) {
		case float64:
			if n != float64(int(n)) {
				errs = append(errs, FieldError{"truthScore", "must be an integer"})
			} else if n < 0 || n > 100 {
				errs = append(errs, FieldError{"truthScore", fmt.Sprintf("must be between 0 and 100, got %d", int(n))})
			} else {
				s := int(n)
				res.TruthScore = &s
			}
		default:
			errs = append(errs, FieldError{"truthScore", "must be an integer or null"})
		}
	}

	switch v := obj["report"].(type) {
	case string:
		res.Report = v
	case nil:
		errs = append(errs, FieldError{"report", "is required"})
	default:
		errs = append(errs, FieldError{"report", "must be a string"})
	}

	res.Sources = []Source{}
	switch arr := obj["sources"].(type) {
	case []any:
		for i, item := range arr {
			s, ok := item.(map[string]any)
			if !ok {
				errs = append(errs, FieldError{fmt.Sprintf("sources[%d]", i), "must be an object"})
				continue
			}
			var src Source
			switch u := s["url"].(type) {
			case string:
				src.URL = u
			case nil:
				errs = append(errs, FieldError{fmt.Sprintf("sources[%d].url", i), "is required"})
			default:
				errs = append(errs, FieldError{fmt.Sprintf("sources[%d].url", i), "must be a string"})
			}
			switch t := s["title"].(type) {
			case string:
				src.Title = &t
			case nil:
			default:
				errs = append(errs, FieldError{fmt.Sprintf("sources[%d].title", i), "must be a string or null"})
			}
			res.Sources = append(res.Sources, src)
		}
	case nil:
		errs = append(errs, FieldError{"sources", "is required"})
	default:
		errs = append(errs, FieldError{"sources", "must be an array"})
	}

	if len(errs) > 0 {
		return FactCheckResult{}, errs
	}
	return res, nil
}

func nullableString(obj map[string]any, key string, errs []FieldError) (*string, []FieldError) {
	switch v := obj[key].(type) {
	case string:
		return &v, errs
	case nil:
		return nil, errs
	default:
		return nil, append(errs, FieldError{key, "must be a string or null"})
	}
}

// stringArray defaults an absent or null field to an empty slice.
func stringArray(obj map[string]any, key string, errs []FieldError) ([]string, []FieldError) {
	out := []string{}
	switch v := obj[key].(type) {
	case []any:
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				errs = append(errs, FieldError{fmt.Sprintf("%s[%d]", key, i), "must be a string"})
				continue
			}
			out = append(out, s)
		}
	case nil:
	default:
		errs = append(errs, FieldError{key, "must be an array of strings"})
	}
	return out, errs
}
