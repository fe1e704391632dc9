package main

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// textOr returns the trimmed text of the first matched node, or the
// fallback when the selection is empty or blank. All extractors go
// through this instead of repeating default literals at call sites.
func textOr(sel *goquery.Selection, fallback string) string {
	text := strings.TrimSpace(sel.First().Text())
	if text == "" {
		return fallback
	}

	return text
}

func attrOr(sel *goquery.Selection, name string, fallback string) string {
	value, exists := sel.First().Attr(name)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}

	return strings.TrimSpace(value)
}

// firstText walks a selector fallback chain and returns the first
// non-blank match. Source markup versions differ in which selector
// carries a field, so most fields resolve through a chain like this.
func firstText(root *goquery.Selection, selectors []string, fallback string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(root.Find(selector).First().Text()); text != "" {
			return text
		}
	}

	return fallback
}

func digitsOnly(value string) string {
	var builder strings.Builder

	for _, char := range value {
		if char >= '0' && char <= '9' {
			builder.WriteRune(char)
		}
	}

	return builder.String()
}

// parseScore accepts only a pure non-negative integer, anything else
// degrades to 0 rather than failing the record.
func parseScore(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	for _, char := range value {
		if char < '0' || char > '9' {
			return 0
		}
	}

	score, errScore := strconv.Atoi(value)
	if errScore != nil {
		return 0
	}

	return score
}

func titleCase(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
