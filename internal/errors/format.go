package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// FormatForCLI renders err for a terminal: the message, sorted details,
// an optional hint and the code. Plain errors are reported as internal.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}
	fe := asFoodErrorOrInternal(err)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", fe.Message)
	for _, k := range sortedKeys(fe.Details) {
		fmt.Fprintf(&sb, "  %s: %s\n", k, fe.Details[k])
	}
	if fe.Suggestion != "" {
		fmt.Fprintf(&sb, "  Hint: %s\n", fe.Suggestion)
	}
	fmt.Fprintf(&sb, "  Code: %s\n", fe.Code)
	return sb.String()
}

// errorPayload is the wire form used by --json.
type errorPayload struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Category   Category          `json:"category"`
	Severity   Severity          `json:"severity"`
	Retryable  bool              `json:"retryable"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      string            `json:"cause,omitempty"`
}

// FormatJSON renders err as a single JSON object wrapped in {"error": ...}.
func FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return []byte("null"), nil
	}
	fe := asFoodErrorOrInternal(err)

	p := errorPayload{
		Code:       fe.Code,
		Message:    fe.Message,
		Category:   fe.Category,
		Severity:   fe.Severity,
		Retryable:  fe.Retryable,
		Details:    fe.Details,
		Suggestion: fe.Suggestion,
	}
	if fe.Cause != nil {
		p.Cause = fe.Cause.Error()
	}
	return json.Marshal(struct {
		Error errorPayload `json:"error"`
	}{p})
}

// LogAttrs returns slog attributes describing err, ready to pass to
// logger.Warn and friends.
func LogAttrs(err error) []any {
	if err == nil {
		return nil
	}
	fe, ok := asFoodError(err)
	if !ok {
		return []any{slog.String("error", err.Error())}
	}

	attrs := []any{
		slog.String("error_code", fe.Code),
		slog.String("error", fe.Message),
	}
	if fe.Cause != nil {
		attrs = append(attrs, slog.String("cause", fe.Cause.Error()))
	}
	if fe.Retryable {
		attrs = append(attrs, slog.Bool("retryable", true))
	}
	for _, k := range sortedKeys(fe.Details) {
		attrs = append(attrs, slog.String(k, fe.Details[k]))
	}
	return attrs
}

func asFoodError(err error) (*FoodError, bool) {
	var fe *FoodError
	if stderrors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func asFoodErrorOrInternal(err error) *FoodError {
	if fe, ok := asFoodError(err); ok {
		return fe
	}
	return Wrap(ErrCodeInternal, err)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
