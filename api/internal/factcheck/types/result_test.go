package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("test fixture is not valid JSON: %v", err)
	}
	return v
}

func TestValidateResult_Full(t *testing.T) {
	raw := `{
		"productName": "HyperGlow Serum",
		"company": "Lumina Labs",
		"keyNumbers": ["98% saw results", "2 weeks"],
		"measurableFacts": ["Clinically tested on 40 subjects"],
		"category": "cosmetics",
		"briefContext": "Skincare ad with clinical-sounding claims.",
		"truthScore": 61,
		"report": "Most claims are plausible but the sample size is small.",
		"sources": [
			{"title": "FTC guidance", "url": "https://www.ftc.gov/ads"},
			{"title": null, "url": "https://example.org/study"}
		]
	}`

	res, errs := ValidateResult(decode(t, raw))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if res.ProductName == nil || *res.ProductName != "HyperGlow Serum" {
		t.Errorf("productName: got %v", res.ProductName)
	}
	if res.TruthScore == nil || *res.TruthScore != 61 {
		t.Errorf("truthScore: got %v", res.TruthScore)
	}
	if len(res.KeyNumbers) != 2 || len(res.Sources) != 2 {
		t.Errorf("unexpected arrays: %v / %v", res.KeyNumbers, res.Sources)
	}
	if res.Sources[1].Title != nil {
		t.Errorf("expected nil title for second source, got %v", *res.Sources[1].Title)
	}
}

func TestValidateResult_Minimal(t *testing.T) {
	raw := `{
		"productName": null,
		"company": null,
		"category": null,
		"briefContext": null,
		"truthScore": null,
		"report": "Insufficient information to verify.",
		"sources": []
	}`

	res, errs := ValidateResult(decode(t, raw))
	if len(errs) != 0 {
		t.Fatalf("minimal valid result rejected: %v", errs)
	}
	if res.TruthScore != nil {
		t.Errorf("expected nil truthScore, got %d", *res.TruthScore)
	}
	if res.KeyNumbers == nil || len(res.KeyNumbers) != 0 {
		t.Errorf("keyNumbers should default to empty, got %v", res.KeyNumbers)
	}
	if res.MeasurableFacts == nil || len(res.MeasurableFacts) != 0 {
		t.Errorf("measurableFacts should default to empty, got %v", res.MeasurableFacts)
	}
	if res.Sources == nil || len(res.Sources) != 0 {
		t.Errorf("sources should be empty, got %v", res.Sources)
	}
}

func TestValidateResult_TruthScoreBounds(t *testing.T) {
	cases := []struct {
		name  string
		score string
		ok    bool
	}{
		{"zero", "0", true},
		{"hundred", "100", true},
		{"over", "120", false},
		{"negative", "-5", false},
		{"fractional", "61.5", false},
		{"string", `"61"`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := `{"report": "r", "sources": [], "truthScore": ` + tc.score + `}`
			_, errs := ValidateResult(decode(t, raw))
			if tc.ok && len(errs) != 0 {
				t.Fatalf("expected accept, got %v", errs)
			}
			if !tc.ok {
				if len(errs) != 1 || errs[0].Field != "truthScore" {
					t.Fatalf("expected single truthScore error, got %v", errs)
				}
			}
		})
	}
}

func TestValidateResult_MissingReport(t *testing.T) {
	_, errs := ValidateResult(decode(t, `{"sources": []}`))
	if len(errs) != 1 || errs[0].Field != "report" {
		t.Fatalf("expected report error, got %v", errs)
	}
}

func TestValidateResult_SourceURLRequired(t *testing.T) {
	raw := `{"report": "r", "sources": [{"title": "no link"}, {"url": "https://ok.example"}]}`
	_, errs := ValidateResult(decode(t, raw))
	if len(errs) != 1 || errs[0].Field != "sources[0].url" {
		t.Fatalf("expected sources[0].url error, got %v", errs)
	}
}

func TestValidateResult_CollectsEveryError(t *testing.T) {
	raw := `{
		"productName": 7,
		"keyNumbers": "not-an-array",
		"truthScore": 150,
		"sources": [{"title": "x"}]
	}`
	_, errs := ValidateResult(decode(t, raw))

	want := map[string]bool{
		"productName":    false,
		"keyNumbers":     false,
		"truthScore":     false,
		"report":         false,
		"sources[0].url": false,
	}
	for _, e := range errs {
		if _, ok := want[e.Field]; ok {
			want[e.Field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("expected an error for %s, got %v", field, errs)
		}
	}
}

func TestValidateResult_NotAnObject(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `"text"`, `42`} {
		_, errs := ValidateResult(decode(t, raw))
		if len(errs) == 0 {
			t.Errorf("expected rejection for %s", raw)
		}
	}
}

func TestValidateResult_RoundTrip(t *testing.T) {
	raw := `{
		"productName": "X",
		"company": null,
		"keyNumbers": ["1"],
		"measurableFacts": [],
		"category": null,
		"briefContext": null,
		"truthScore": 40,
		"report": "r",
		"sources": [{"title": null, "url": "https://example.com"}]
	}`

	first, errs := ValidateResult(decode(t, raw))
	if len(errs) != 0 {
		t.Fatalf("first pass: %v", errs)
	}

	b, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again any
	if err := json.Unmarshal(b, &again); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	second, errs := ValidateResult(again)
	if len(errs) != 0 {
		t.Fatalf("second pass: %v", errs)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the result:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
