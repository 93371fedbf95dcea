// Package text turns raw authored content into the token lists the
// analysis pipeline consumes: plain text, sentences, words, and
// paragraphs. Markup handling is deliberately permissive; malformed or
// unbalanced tags are tolerated and never produce an error.
package text

import (
	"html"
	"regexp"
	"strings"
)

// Tokens holds the tokenized form of one document.
type Tokens struct {
	PlainText  string
	Sentences  []string
	Words      []string
	Paragraphs []string
}

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleBlockPattern  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	tagPattern         = regexp.MustCompile(`<[^>]*>`)
	sentenceEndPattern = regexp.MustCompile(`[.!?]+`)
	paragraphPattern   = regexp.MustCompile(`(?i)</p>|\n{2,}`)
	spacePattern       = regexp.MustCompile(`[ \t]+`)
)

// StripTags removes markup from content and decodes basic HTML
// entities. Script and style bodies are dropped wholesale; any other
// tag is replaced by a space so adjacent words stay separated.
func StripTags(content string) string {
	s := scriptBlockPattern.ReplaceAllString(content, " ")
	s = styleBlockPattern.ReplaceAllString(s, " ")
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits content into plain text, sentences, words, and
// paragraphs. Paragraph boundaries are closing paragraph tags or runs
// of two or more line breaks; paragraphs whose stripped text is empty
// are discarded.
func Tokenize(content string) Tokens {
	plain := StripTags(content)

	return Tokens{
		PlainText:  plain,
		Sentences:  SplitSentences(plain),
		Words:      strings.Fields(plain),
		Paragraphs: splitParagraphs(content),
	}
}

// SplitSentences splits plain text on runs of sentence terminators,
// discarding blank results. Text with no terminator is one sentence.
func SplitSentences(plain string) []string {
	parts := sentenceEndPattern.Split(plain, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// CountCharacters returns the number of non-whitespace runes in plain.
func CountCharacters(plain string) int {
	count := 0
	for _, r := range plain {
		if !isSpace(r) {
			count++
		}
	}
	return count
}

func splitParagraphs(content string) []string {
	parts := paragraphPattern.Split(content, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		stripped := StripTags(p)
		if stripped != "" {
			paragraphs = append(paragraphs, stripped)
		}
	}
	return paragraphs
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
