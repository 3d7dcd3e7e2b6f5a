package prompt

import "encoding/json"

// FactCheckInstruction is the fixed task statement sent with every ad image.
const FactCheckInstruction = `You are an advertisement fact-checker.
Look at the attached advertisement image and:
1) Identify the advertised product and the company behind it.
2) Extract the key numbers shown in the ad (prices, percentages, durations).
3) Extract every measurable, verifiable claim the ad makes.
4) Verify the claims against your knowledge and assign an integer truth score
   from 0 (entirely false) to 100 (entirely accurate).
5) Summarize your verdict in roughly two sentences.
6) Cite 2-5 sources (title + url) that support or refute the claims.
If the image is unreadable or carries no verifiable claims, set the nullable
fields to null, leave the arrays empty and explain why in the report.
Answer with ONE JSON document matching factcheck.schema.json. Any text outside
the JSON is an error.`

// FactCheckSchema is factcheck.schema.json embedded as a constant, appended to
// the system instruction and sent verbatim as the strict response format.
const FactCheckSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "factcheck",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "productName": { "type": ["string", "null"] },
    "company": { "type": ["string", "null"] },
    "keyNumbers": { "type": "array", "items": { "type": "string" } },
    "measurableFacts": { "type": "array", "items": { "type": "string" } },
    "category": { "type": ["string", "null"] },
    "briefContext": { "type": ["string", "null"] },
    "truthScore": { "type": ["integer", "null"], "minimum": 0, "maximum": 100 },
    "report": { "type": "string" },
    "sources": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "title": { "type": ["string", "null"] },
          "url": { "type": "string" }
        },
        "required": ["url"]
      }
    }
  },
  "required": ["report", "sources"]
}`

// SchemaMap returns the embedded schema decoded to a map, for clients that
// take a structured schema instead of text (OpenAI json_schema format).
func SchemaMap() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(FactCheckSchema), &m); err != nil {
		return nil, err
	}
	return m, nil
}
