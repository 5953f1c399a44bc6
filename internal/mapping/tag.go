package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrUnknownAttribute  = errors.New("unknown attribute")
	ErrMissingValue      = errors.New("missing value")
	ErrInvalidCount      = errors.New("invalid count")
)

// SyntaxError reports a malformed tag body.
type SyntaxError struct {
	Tag       string
	Attribute string
	Err       error
}

func (e *SyntaxError) Error() string {
	if e.Attribute == "" {
		return "fixture tag " + strconv.Quote(e.Tag) + ": " + e.Err.Error()
	}

	return "fixture tag " + strconv.Quote(e.Tag) + ": attribute " + strconv.Quote(e.Attribute) + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse parses a tag body such as "size=2,elem=birthday".
func Parse(tag string) (FieldOverride, error) {
	var o FieldOverride

	pairs, err := splitPairs(tag)
	if err != nil {
		return FieldOverride{}, &SyntaxError{Tag: tag, Err: err}
	}

	for _, pair := range pairs {
		name, value, hasValue := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !hasValue {
			value = ""
		}

		fail := func(err error) (FieldOverride, error) {
			return FieldOverride{}, &SyntaxError{Tag: tag, Attribute: name, Err: err}
		}

		value, err = unquote(strings.TrimSpace(value))
		if err != nil {
			return fail(err)
		}

		switch name {
		case "":
			continue
		case "-", "exclude":
			o.Exclude = true
			continue
		case "comment":
			o.Comment = value
			continue
		}

		if !hasValue {
			return fail(ErrMissingValue)
		}

		switch name {
		default:
			return fail(ErrUnknownAttribute)
		case "num":
			o.Num = &value
		case "min":
			o.Min = value
		case "max":
			o.Max = value
		case "str":
			o.Str = &value
		case "len":
			n, err := parseCount(value)
			if err != nil {
				return fail(err)
			}
			o.Len = &n
		case "size":
			n, err := parseCount(value)
			if err != nil {
				return fail(err)
			}
			o.Size = &n
		case "strategy":
			o.Strategy = value
		case "elem":
			o.Elem = value
		case "key":
			o.Key = value
		case "value":
			o.Value = value
		}
	}

	return o, nil
}

// Format renders o as a tag body that Parse reads back into an equal value.
func Format(o FieldOverride) string {
	var parts []string

	add := func(name, value string) {
		parts = append(parts, name+"="+quote(value))
	}

	if o.Exclude {
		parts = append(parts, "-")
	}
	if o.Num != nil {
		add("num", *o.Num)
	}
	if o.Min != "" {
		add("min", o.Min)
	}
	if o.Max != "" {
		add("max", o.Max)
	}
	if o.Str != nil {
		add("str", *o.Str)
	}
	if o.Len != nil {
		add("len", strconv.Itoa(*o.Len))
	}
	if o.Size != nil {
		add("size", strconv.Itoa(*o.Size))
	}
	if o.Strategy != "" {
		add("strategy", o.Strategy)
	}
	if o.Elem != "" {
		add("elem", o.Elem)
	}
	if o.Key != "" {
		add("key", o.Key)
	}
	if o.Value != "" {
		add("value", o.Value)
	}
	if o.Comment != "" {
		add("comment", o.Comment)
	}

	return strings.Join(parts, ",")
}

// IsExcluded reports whether a tag body carries the exclusion marker. It
// does not validate the rest of the body.
func IsExcluded(tag string) bool {
	pairs, err := splitPairs(tag)
	if err != nil {
		return false
	}

	return slices.ContainsFunc(pairs, func(pair string) bool {
		pair = strings.TrimSpace(pair)
		return pair == "-" || pair == "exclude"
	})
}

// splitPairs splits on commas outside single quotes.
func splitPairs(tag string) ([]string, error) {
	var (
		pairs   []string
		current strings.Builder
		quoted  bool
	)

	for _, r := range tag {
		switch {
		case r == '\'':
			quoted = !quoted
			current.WriteRune(r)
		case r == ',' && !quoted:
			pairs = append(pairs, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if quoted {
		return nil, ErrUnterminatedQuote
	}

	if current.Len() > 0 || len(pairs) > 0 {
		pairs = append(pairs, current.String())
	}

	return pairs, nil
}

func unquote(value string) (string, error) {
	if !strings.HasPrefix(value, "'") {
		return value, nil
	}

	if len(value) < 2 || !strings.HasSuffix(value, "'") {
		return "", ErrUnterminatedQuote
	}

	return strings.ReplaceAll(value[1:len(value)-1], "''", "'"), nil
}

func quote(value string) string {
	if value != "" && !strings.ContainsAny(value, ",' ") {
		return value
	}

	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func parseCount(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, value)
	}

	return n, nil
}
