package fulltext

import (
	"regexp"
	"slices"
	"strings"

	"support-kit/core/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultThreshold is the similarity percentage a token pair needs to count.
const DefaultThreshold = 80.0

const (
	scoreEqual    = 10000.0
	scorePrefix   = 5000.0
	scoreContains = 1000.0
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9]`)

// FullText holds the tokenized parts of a searchable record.
type FullText struct {
	parts     []string
	threshold float64
}

// Option configures a FullText.
type Option func(*FullText)

// WithThreshold sets the minimum similarity percentage.
func WithThreshold(pct float64) Option {
	return func(f *FullText) {
		f.threshold = pct
	}
}

// Make creates a scorer over parts. Parts are rendered as strings; nil renders
// as the empty string.
func Make(parts ...any) *FullText {
	return New(parts)
}

// New creates a scorer over parts with options.
func New(parts []any, opts ...Option) *FullText {
	f := &FullText{
		parts:     tokenize(parts...),
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Tokens returns the lowercase tokens the parts were split into.
func (f *FullText) Tokens() []string {
	return slices.Clone(f.parts)
}

// Search returns the relevance of query for the parts. An empty query yields 1.
func (f *FullText) Search(query string) float64 {
	if query == "" {
		return 1.0
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return 0
	}

	relevance := 0.0
	multiplier := float64(uint64(1) << min(len(tokens)-1, 63))
	for _, token := range tokens {
		for _, part := range f.parts {
			if token == part {
				relevance += scoreEqual * multiplier
			}
			if strings.HasPrefix(part, token) {
				relevance += scorePrefix * multiplier
			}
			if strings.Contains(part, token) {
				relevance += scoreContains * multiplier
			}
			if pct := similarity(token, part); pct >= f.threshold {
				relevance += pct * multiplier
			}
		}
		multiplier /= 2
	}

	return relevance
}

// tokenize joins parts with a space, splits on single spaces and keeps the
// lowercased tokens holding at least one ASCII letter or digit.
func tokenize(parts ...any) []string {
	rendered := make([]string, len(parts))
	for i, part := range parts {
		rendered[i] = utils.ToString(part)
	}
	text := strings.TrimSpace(strings.Join(rendered, " "))

	lower := cases.Lower(language.Und)
	tokens := make([]string, 0)
	for token := range strings.SplitSeq(text, " ") {
		if !wordPattern.MatchString(token) {
			continue
		}
		tokens = append(tokens, lower.String(token))
	}
	return tokens
}

type scored[T any] struct {
	item  T
	score float64
}

// Rank scores every item against query and returns those scoring above zero,
// best first. Items with equal scores keep their input order.
func Rank[T any](items []T, text func(T) []any, query string, opts ...Option) []T {
	results := make([]scored[T], 0, len(items))
	for _, item := range items {
		s := New(text(item), opts...).Search(query)
		if s > 0 {
			results = append(results, scored[T]{item: item, score: s})
		}
	}

	slices.SortStableFunc(results, func(a, b scored[T]) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	out := make([]T, len(results))
	for i, r := range results {
		out[i] = r.item
	}
	return out
}
