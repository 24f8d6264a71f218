package assistantService

import (
	"encoding/json"
	"strings"
	"time"

	"budgefy/internal/api/assistant"
	"budgefy/internal/entity"
)

type intentEnvelope struct {
	AddExpense *assistant.ExpenseIntent `json:"add_expense"`
}

// parseIntent scans a model reply for an embedded add_expense object.
// The reply may wrap the JSON in prose or markdown code fences, so
// every balanced {...} span is tried until one decodes to the envelope.
// found reports whether any add_expense payload was present, even an
// unusable one.
func parseIntent(reply string) (intent *assistant.ExpenseIntent, found bool) {
	if !strings.Contains(reply, "add_expense") {
		return nil, false
	}

	for start := 0; start < len(reply); start++ {
		if reply[start] != '{' {
			continue
		}

		candidate, ok := balancedObject(reply[start:])
		if !ok {
			continue
		}

		var envelope intentEnvelope
		if err := json.Unmarshal([]byte(candidate), &envelope); err != nil {
			continue
		}
		if envelope.AddExpense == nil {
			continue
		}

		return envelope.AddExpense, true
	}

	return nil, true
}

// balancedObject returns the shortest brace-balanced prefix of s,
// ignoring braces inside JSON strings.
func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}

	return "", false
}

// validateIntent reports the fields that keep a payload from becoming
// an expense. An empty result means the intent is usable as-is.
func validateIntent(intent *assistant.ExpenseIntent) []string {
	var problems []string

	if intent.Title == "" || len(intent.Title) > entity.MaxTitleLength {
		problems = append(problems, "title")
	}

	if intent.Amount <= 0 {
		problems = append(problems, "amount")
	}

	if !entity.IsValidExpenseCategory(intent.Category) {
		problems = append(problems, "category")
	}

	if _, err := time.Parse(entity.ExpenseDateLayout, intent.Date); err != nil {
		problems = append(problems, "date")
	}

	return problems
}

// clarificationReply asks for the fields the payload was missing,
// mirroring the tone the model itself is told to use.
func clarificationReply(problems []string) string {
	if len(problems) == 0 {
		return "Sure! Could you give me a bit more detail about that expense?"
	}

	return "Almost there! I still need a valid " + joinNaturally(problems) + " for this expense. Could you share that?"
}

func joinNaturally(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
