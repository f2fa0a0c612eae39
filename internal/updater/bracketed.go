package updater

import (
	"context"
	"strings"

	"github.com/vk/topoconf/internal/ctxlog"
)

// bracketedListCreate handles values of the form ['h1:port','h2:port']:
// strip the brackets and quotes, apply multi-host semantics, re-quote and
// re-bracket. A value without the bracket/quote shape is left unchanged.
func bracketedListCreate(ctx context.Context, res Resolution, value string) (string, error) {
	inner, ok := unbracket(value, res.separator())
	if !ok {
		ctxlog.FromContext(ctx).Warn("Value is not a bracketed quoted list, leaving unchanged.", "value", value)
		return value, nil
	}

	resolved, err := multiHostCreate(ctx, res, inner)
	if err != nil {
		return "", err
	}
	return rebracket(resolved, res.separator()), nil
}

func bracketedListExport(ctx context.Context, res Resolution, value string) (ExportResult, error) {
	inner, ok := unbracket(value, res.separator())
	if !ok {
		ctxlog.FromContext(ctx).Warn("Value is not a bracketed quoted list, leaving unchanged.", "value", value)
		return ExportResult{Value: value}, nil
	}

	result, err := multiHostExport(ctx, res, inner)
	if err != nil {
		return ExportResult{}, err
	}
	if result.Omit {
		return result, nil
	}
	return ExportResult{Value: rebracket(result.Value, res.separator())}, nil
}

// unbracket turns ['a','b'] into the bare list a,b. ok is false when the
// value lacks the bracket shape.
func unbracket(value, sep string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return "", false
	}
	body := trimmed[1 : len(trimmed)-1]

	var elements []string
	for _, el := range splitElements(body, sep) {
		el = strings.Trim(el, "'")
		if el == "" {
			return "", false
		}
		elements = append(elements, el)
	}
	if len(elements) == 0 {
		return "", false
	}
	return strings.Join(elements, sep), true
}

// rebracket quotes each element and restores the bracket shape.
func rebracket(inner, sep string) string {
	elements := splitElements(inner, sep)
	quoted := make([]string, len(elements))
	for i, el := range elements {
		quoted[i] = "'" + el + "'"
	}
	return "[" + strings.Join(quoted, sep) + "]"
}
