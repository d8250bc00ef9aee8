package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseResults turns the model's reply text into a result list. Models often
// wrap JSON in markdown fences despite instructions, so fences are stripped
// before unmarshalling. The result order follows the reply order.
func ParseResults(reply string) ([]Result, error) {
	cleaned := stripFences(reply)
	if cleaned == "" {
		return nil, fmt.Errorf("empty analyzer reply")
	}

	var results []Result
	if err := json.Unmarshal([]byte(cleaned), &results); err != nil {
		// Some replies hold a single object instead of an array
		var single Result
		if singleErr := json.Unmarshal([]byte(cleaned), &single); singleErr == nil && single.Expr != "" {
			return []Result{single}, nil
		}
		return nil, fmt.Errorf("unparseable analyzer reply: %w", err)
	}

	return results, nil
}

// stripFences removes a surrounding ```json ... ``` or ``` ... ``` block
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line, e.g. "json"
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
