// Package spellcheck implements the spell-check collaborator: a base
// dictionary augmented with a supplementary word list of domain terms,
// with email addresses and URLs exempt from checking.
package spellcheck

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sajari/fuzzy"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
)

// maxSuggestions caps the corrections reported per finding.
const maxSuggestions = 5

// Ensure Checker implements the interface.
var _ driven.SpellChecker = (*Checker)(nil)

// Config selects the dictionaries for a checker. It is built once per
// analysis run and passed in explicitly; there is no ambient dictionary
// state.
type Config struct {
	// DictionaryPath is the base dictionary file, one word per line.
	DictionaryPath string

	// WordListPath is an optional supplementary word list of domain
	// terms maintained alongside the notebooks.
	WordListPath string
}

// Checker flags words found in neither the base dictionary nor the
// supplementary word list. Checking is stateless across calls.
type Checker struct {
	known map[string]struct{}
	model *fuzzy.Model
}

var (
	emailPattern = regexp.MustCompile(`^[\w.+-]+@[\w-]+\.[\w.-]+$`)
	urlPattern   = regexp.MustCompile(`^(?:(?:https?|ftp|file)://|www\.)`)

	// wordPattern extracts alphabetic word runs, keeping inner
	// apostrophes (don't, author's).
	wordPattern = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)*`)
)

// New loads the dictionaries and trains the suggestion model.
func New(cfg Config) (*Checker, error) {
	words, err := readWordFile(cfg.DictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDictionaryUnavailable, cfg.DictionaryPath, err)
	}

	if cfg.WordListPath != "" {
		extra, err := readWordFile(cfg.WordListPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDictionaryUnavailable, cfg.WordListPath, err)
		}
		words = append(words, extra...)
	}

	known := make(map[string]struct{}, len(words)*2)
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		known[w] = struct{}{}
		lw := strings.ToLower(w)
		known[lw] = struct{}{}
		lowered = append(lowered, lw)
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(lowered)

	return &Checker{known: known, model: model}, nil
}

// Check returns the misspellings in text, in order of occurrence.
func (c *Checker) Check(text string) []domain.Misspelling {
	var findings []domain.Misspelling
	for _, token := range strings.Fields(text) {
		trimmed := strings.Trim(token, ".,;:!?()[]{}<>\"'`")
		if trimmed == "" || emailPattern.MatchString(trimmed) || urlPattern.MatchString(trimmed) {
			continue
		}
		for _, word := range wordPattern.FindAllString(token, -1) {
			if len(word) < 2 || c.isKnown(word) {
				continue
			}
			findings = append(findings, domain.Misspelling{
				Word:        word,
				Suggestions: c.suggest(word),
			})
		}
	}
	return findings
}

func (c *Checker) isKnown(word string) bool {
	if _, ok := c.known[word]; ok {
		return true
	}
	_, ok := c.known[strings.ToLower(word)]
	return ok
}

func (c *Checker) suggest(word string) []string {
	suggestions := c.model.Suggestions(strings.ToLower(word), false)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// readWordFile loads a word-per-line file, skipping blanks and comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
