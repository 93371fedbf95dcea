package text_test

import (
	"strings"
	"testing"

	"github.com/readably/readably/internal/text"
)

func TestStripTags_Plain(t *testing.T) {
	if got := text.StripTags("Hello world."); got != "Hello world." {
		t.Errorf("got %q, want %q", got, "Hello world.")
	}
}

func TestStripTags_Tags(t *testing.T) {
	got := text.StripTags("<p>Hello <strong>world</strong>.</p>")
	if got != "Hello world ." {
		t.Errorf("got %q, want %q", got, "Hello world .")
	}
}

func TestStripTags_Entities(t *testing.T) {
	got := text.StripTags("Fish &amp; chips")
	if got != "Fish & chips" {
		t.Errorf("got %q, want %q", got, "Fish & chips")
	}
}

func TestStripTags_ScriptDropped(t *testing.T) {
	got := text.StripTags("before<script>var x = 1;</script>after")
	if strings.Contains(got, "var x") {
		t.Errorf("script body survived stripping: %q", got)
	}
}

func TestStripTags_UnclosedTagTolerated(t *testing.T) {
	// Malformed markup must never error; best effort is fine.
	got := text.StripTags("Hello <b world")
	if got == "" {
		t.Error("unclosed tag produced empty text")
	}
}

func TestTokenize_Counts(t *testing.T) {
	tok := text.Tokenize("The cat sat on the mat.")
	if len(tok.Words) != 6 {
		t.Errorf("words: got %d, want 6", len(tok.Words))
	}
	if len(tok.Sentences) != 1 {
		t.Errorf("sentences: got %d, want 1", len(tok.Sentences))
	}
	if len(tok.Paragraphs) != 1 {
		t.Errorf("paragraphs: got %d, want 1", len(tok.Paragraphs))
	}
}

func TestTokenize_Empty(t *testing.T) {
	tok := text.Tokenize("")
	if len(tok.Words) != 0 || len(tok.Sentences) != 0 || len(tok.Paragraphs) != 0 {
		t.Errorf("empty input produced tokens: %+v", tok)
	}
}

func TestSplitSentences_Terminators(t *testing.T) {
	got := text.SplitSentences("Wow! Really? Yes.")
	if len(got) != 3 {
		t.Fatalf("got %d sentences, want 3: %v", len(got), got)
	}
	if got[0] != "Wow" {
		t.Errorf("sentence 0: got %q, want %q", got[0], "Wow")
	}
}

func TestSplitSentences_EllipsisCollapsed(t *testing.T) {
	// Runs of terminators count as one boundary.
	got := text.SplitSentences("Wait... done.")
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2: %v", len(got), got)
	}
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	got := text.SplitSentences("no punctuation here")
	if len(got) != 1 {
		t.Fatalf("got %d sentences, want 1: %v", len(got), got)
	}
}

func TestTokenize_ParagraphsByBlankLine(t *testing.T) {
	tok := text.Tokenize("First paragraph.\n\nSecond paragraph.")
	if len(tok.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2: %v", len(tok.Paragraphs), tok.Paragraphs)
	}
}

func TestTokenize_ParagraphsByClosingTag(t *testing.T) {
	tok := text.Tokenize("<p>One.</p><p>Two.</p>")
	if len(tok.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2: %v", len(tok.Paragraphs), tok.Paragraphs)
	}
}

func TestTokenize_BlankParagraphDiscarded(t *testing.T) {
	tok := text.Tokenize("One.\n\n<p></p>\n\nTwo.")
	if len(tok.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2: %v", len(tok.Paragraphs), tok.Paragraphs)
	}
}

func TestCountCharacters(t *testing.T) {
	// 18 letters plus the period; whitespace excluded.
	if got := text.CountCharacters("The cat sat on the mat."); got != 19 {
		t.Errorf("got %d, want 19", got)
	}
}

func TestCountCharacters_Empty(t *testing.T) {
	if got := text.CountCharacters(""); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestFromMarkdown_Inline(t *testing.T) {
	got := text.FromMarkdown([]byte("Click [here](https://example.com) *now*.\n"))
	if got != "Click here now." {
		t.Errorf("got %q, want %q", got, "Click here now.")
	}
}

func TestFromMarkdown_ParagraphsSeparated(t *testing.T) {
	got := text.FromMarkdown([]byte("First.\n\nSecond.\n"))
	if got != "First.\n\nSecond." {
		t.Errorf("got %q, want %q", got, "First.\n\nSecond.")
	}
}

func TestFromMarkdown_HeadingText(t *testing.T) {
	got := text.FromMarkdown([]byte("# Title\n\nBody here.\n"))
	if !strings.Contains(got, "Title") || !strings.Contains(got, "Body here.") {
		t.Errorf("got %q, want heading and body text", got)
	}
}
