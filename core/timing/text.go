package timing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	stageDirection         = regexp.MustCompile(`\*([^*]*)\*`)
	whitespaceRun          = regexp.MustCompile(`\s+`)
	spaceBeforePunctuation = regexp.MustCompile(`\s+([.,!?;:…])`)
	sentencePattern        = regexp.MustCompile(`[^.!?]*[.!?]+|[^.!?]+$`)
)

// Cleaned is dialogue with stage directions removed.
type Cleaned struct {
	Text string
	// Caption holds the removed stage directions, space separated.
	Caption string
}

// CleanText strips *action* stage directions from the dialogue and keeps them
// as a caption. Whitespace left behind is collapsed and spaces before
// punctuation are removed.
func CleanText(text string) Cleaned {
	var captions []string
	for _, match := range stageDirection.FindAllStringSubmatch(text, -1) {
		if caption := collapse(match[1]); caption != "" {
			captions = append(captions, caption)
		}
	}

	stripped := stageDirection.ReplaceAllString(text, " ")
	stripped = strings.ReplaceAll(stripped, "*", "")
	stripped = collapse(stripped)
	stripped = spaceBeforePunctuation.ReplaceAllString(stripped, "$1")

	return Cleaned{Text: stripped, Caption: strings.Join(captions, " ")}
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// SplitSentences splits text after runs of terminal punctuation, keeping the
// punctuation. Text without terminal punctuation is a single sentence.
func SplitSentences(text string) []string {
	var sentences []string
	for _, match := range sentencePattern.FindAllString(text, -1) {
		if sentence := strings.TrimSpace(match); sentence != "" {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

// JoinSentences joins sentences with the line break the reveal ranges
// account for.
func JoinSentences(sentences []string) string { return strings.Join(sentences, "\n") }

func runeLen(s string) int { return utf8.RuneCountInString(s) }
