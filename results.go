package main

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kawakaze/hltv-api/domain"
)

const (
	resultsPath = "/results"
	maxResults  = 20
)

// Results fetches the recent results page. Day/tier filtering is a
// caller concern, the extractor returns everything present up to the
// cap.
func (c *HLTVClient) Results(ctx context.Context) ([]domain.ResultEntry, error) {
	doc, errDoc := c.fetch(ctx, resultsPath)
	if errDoc != nil {
		return nil, errDoc
	}

	return c.parseResults(doc), nil
}

func (c *HLTVClient) parseResults(doc *goquery.Document) []domain.ResultEntry {
	var results []domain.ResultEntry

	doc.Find(".result-con").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}

		result := sel.Find("div.result").First()
		if result.Length() == 0 {
			return true
		}

		score1, score2 := parseScorePair(textOr(result.Find("td.result-score"), ""))

		results = append(results, domain.ResultEntry{
			Team1:  firstText(result, []string{"div.team1 .team", ".line-align.team1 .team"}, "Unknown"),
			Team2:  firstText(result, []string{"div.team2 .team", ".line-align.team2 .team"}, "Unknown"),
			Score1: score1,
			Score2: score2,
			Event:  firstText(sel, []string{".event-name", "td.event"}, "Unknown"),
			URL:    c.absoluteURL(attrOr(sel.Find("a"), "href", "")),
		})

		return true
	})

	return results
}

// parseScorePair splits a "N - M" display fragment. Each side
// independently degrades to 0 when it is not a plain integer.
func parseScorePair(text string) (int, int) {
	left, right, found := strings.Cut(text, "-")
	if !found {
		return parseScore(left), 0
	}

	return parseScore(left), parseScore(right)
}
