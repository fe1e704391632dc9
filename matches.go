package main

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kawakaze/hltv-api/domain"
)

const (
	matchesPath = "/matches"
	maxMatches  = 15
)

// Matches fetches the upcoming matches listing.
func (c *HLTVClient) Matches(ctx context.Context) ([]domain.MatchSummary, error) {
	doc, errDoc := c.fetch(ctx, matchesPath)
	if errDoc != nil {
		return nil, errDoc
	}

	return c.parseMatches(doc), nil
}

// parseMatches extracts up to maxMatches records. A fragment without a
// match link or without both team names is skipped entirely; every
// other missing field degrades to its default.
func (c *HLTVClient) parseMatches(doc *goquery.Document) []domain.MatchSummary {
	var matches []domain.MatchSummary

	doc.Find("div.match").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(matches) >= maxMatches {
			return false
		}

		href, hasLink := sel.Find("a[href*='/matches/']").First().Attr("href")
		if !hasLink {
			return true
		}

		teams := sel.Find("div.match-teamname")
		if teams.Length() < 2 {
			return true
		}

		matches = append(matches, domain.MatchSummary{
			Team1:  strings.TrimSpace(teams.Eq(0).Text()),
			Team2:  strings.TrimSpace(teams.Eq(1).Text()),
			Event:  deriveEventName(href),
			Time:   textOr(sel.Find(".match-time"), "TBD"),
			BoType: textOr(sel.Find(".match-meta"), "bo3"),
			URL:    c.absoluteURL(href),
			Score1: 0,
			Score2: 0,
		})

		return true
	})

	return matches
}

// deriveEventName recovers the event name from a match URL slug of the
// form /matches/<id>/<team1>-vs-<team2>-<event-words>. The first
// segment after "-vs-" is the opponent name, everything past its first
// hyphen is the event.
func deriveEventName(href string) string {
	slug := href
	if idx := strings.LastIndex(href, "/"); idx >= 0 {
		slug = href[idx+1:]
	}

	_, afterVs, foundVs := strings.Cut(slug, "-vs-")
	if !foundVs {
		return "Unknown"
	}

	_, eventSlug, foundEvent := strings.Cut(afterVs, "-")
	if !foundEvent {
		return "Unknown"
	}

	name := titleCase(strings.ReplaceAll(eventSlug, "-", " "))
	if name == "" {
		return "Unknown"
	}

	return name
}
