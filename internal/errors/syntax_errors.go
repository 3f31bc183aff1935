package errors

import (
	"fmt"
	"strings"

	"minic/internal/ast"
)

// SyntaxErrorBuilder provides a fluent interface for creating scanner and parser errors
type SyntaxErrorBuilder struct {
	err CompilerError
}

// NewSyntaxError creates a new syntax error builder
func NewSyntaxError(code, message string, pos ast.Position) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SyntaxErrorBuilder) WithSuggestion(message string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SyntaxErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

// WithKeywordSuggestion suggests the keyword a misspelled or wrongly cased word was probably meant to be.
func (b *SyntaxErrorBuilder) WithKeywordSuggestion(word string, keywords []string) *SyntaxErrorBuilder {
	similar := findSimilarNames(word, keywords)
	switch len(similar) {
	case 0:
		return b
	case 1:
		b = b.WithReplacement(fmt.Sprintf("did you mean '%s'?", similar[0]), similar[0], b.err.Position, len(word))
	default:
		b = b.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}
	return b.WithNote("keywords are case-sensitive")
}

// Build returns the completed compiler error
func (b *SyntaxErrorBuilder) Build() CompilerError {
	if b.err.HelpText == "" {
		if desc := GetErrorDescription(b.err.Code); desc != "Unknown error code" {
			b.err.HelpText = desc
		}
	}
	return b.err
}

// findSimilarNames returns the candidates within edit distance 2 of target,
// or an exact case-insensitive match when there is one.
func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if strings.EqualFold(target, candidate) {
			return []string{candidate}
		}
	}

	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
