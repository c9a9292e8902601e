package utils

import (
	"math"
	"math/rand"
	"strings"
)

// Percentage converts a completed/total pair into a rounded integer
// percentage. A zero total reports 0 rather than a division error.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
	"adipiscing", "elit", "sed", "do", "eiusmod", "tempor",
	"incididunt", "ut", "labore", "dolore", "magna", "aliqua",
	"veniam", "quis", "nostrud", "exercitation", "ullamco",
	"laboris", "aliquip", "commodo", "consequat", "duis",
	"aute", "irure", "reprehenderit", "voluptate",
}

// RandInt returns a random integer in [min, max]
func RandInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

// Sentence generates a capitalized lorem-ipsum sentence of numWords words
func Sentence(numWords int) string {
	words := make([]string, numWords)
	for i := range words {
		words[i] = loremWords[rand.Intn(len(loremWords))]
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Paragraphs generates numParagraphs lorem-ipsum paragraphs separated by blank lines
func Paragraphs(numParagraphs, wordsPerParagraph int) string {
	paragraphs := make([]string, numParagraphs)
	for i := range paragraphs {
		paragraphs[i] = Sentence(wordsPerParagraph)
	}
	return strings.Join(paragraphs, "\n\n")
}
