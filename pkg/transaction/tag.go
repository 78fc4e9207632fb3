package transaction

import (
	"fmt"
	"strings"
	"time"
)

// TagKind identifies the flow that generated a transaction.
type TagKind string

const (
	// TagSubscription marks transactions posted from a subscription charge.
	TagSubscription TagKind = "sub"
	// TagCardPayment marks transactions recorded for a card payment.
	TagCardPayment TagKind = "ccpay"
)

// Tag is a provenance marker embedded in a transaction note. Generated
// transactions carry one so the same source and period is never posted
// twice. The rendered form is "[kind:source:YYYY-MM]" and older notes
// carrying that literal text parse back into an equal Tag, so detection
// stays compatible with data written before tags were typed.
type Tag struct {
	Kind   TagKind
	Source string
	Year   int
	Month  time.Month
}

func NewSubscriptionTag(name string, year int, month time.Month) Tag {
	return Tag{Kind: TagSubscription, Source: name, Year: year, Month: month}
}

func NewCardPaymentTag(name string, year int, month time.Month) Tag {
	return Tag{Kind: TagCardPayment, Source: name, Year: year, Month: month}
}

// String renders the tag in its stored form, e.g. "[sub:Netflix:2025-07]".
func (t Tag) String() string {
	return fmt.Sprintf("[%s:%s:%d-%02d]", t.Kind, t.Source, t.Year, int(t.Month))
}

// MatchesNote reports whether the note carries this tag. Comparison is
// structural over the parsed tags of the note, with a substring fallback
// for notes where the marker is embedded in unparseable surroundings.
func (t Tag) MatchesNote(note string) bool {
	for _, found := range TagsIn(note) {
		if found == t {
			return true
		}
	}
	return strings.Contains(note, t.String())
}

// TagsIn extracts all well-formed tags from a note.
func TagsIn(note string) []Tag {
	var tags []Tag
	rest := note
	for {
		start := strings.IndexByte(rest, '[')
		if start < 0 {
			return tags
		}
		end := strings.IndexByte(rest[start:], ']')
		if end < 0 {
			return tags
		}
		if tag, ok := ParseTag(rest[start : start+end+1]); ok {
			tags = append(tags, tag)
		}
		rest = rest[start+end+1:]
	}
}

// ParseTag parses a single bracketed marker. The source segment may itself
// contain colons; the kind and the period anchor both ends.
func ParseTag(s string) (Tag, bool) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Tag{}, false
	}
	parts := strings.Split(s[1:len(s)-1], ":")
	if len(parts) < 3 {
		return Tag{}, false
	}

	kind := TagKind(parts[0])
	if kind != TagSubscription && kind != TagCardPayment {
		return Tag{}, false
	}

	period, err := time.Parse("2006-01", parts[len(parts)-1])
	if err != nil {
		return Tag{}, false
	}

	source := strings.Join(parts[1:len(parts)-1], ":")
	if source == "" {
		return Tag{}, false
	}

	return Tag{Kind: kind, Source: source, Year: period.Year(), Month: period.Month()}, true
}
