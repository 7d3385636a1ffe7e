package gemini

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
	codePattern   = regexp.MustCompile("`(.*?)`")
)

const maxAnswerWords = 200

// ExtractJSONObject pulls the JSON object the model embedded in its
// reply out of surrounding prose or markdown fencing and decodes it
// into v. The scan is deliberately loose: first '{' to last '}' with
// no schema validation, because the completion API's output format is
// not contractually guaranteed. Keep all tolerance decisions here.
func ExtractJSONObject(raw string, v interface{}) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return &MalformedResponseError{Reason: "no JSON object found in response"}
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return &MalformedResponseError{Reason: "invalid JSON in response", Err: err}
	}
	return nil
}

// CleanAnswer normalizes a free-text reply for display: strips
// markdown emphasis and caps the answer at 200 words.
func CleanAnswer(raw string) string {
	cleaned := strings.TrimSpace(raw)

	cleaned = boldPattern.ReplaceAllString(cleaned, "$1")
	cleaned = italicPattern.ReplaceAllString(cleaned, "$1")
	cleaned = codePattern.ReplaceAllString(cleaned, "$1")

	words := strings.Fields(cleaned)
	if len(words) > maxAnswerWords {
		cleaned = strings.Join(words[:maxAnswerWords], " ") + "..."
	}

	return strings.TrimSpace(cleaned)
}
