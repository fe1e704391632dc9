package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kawakaze/hltv-api/domain"
)

const (
	rankingsPath         = "/ranking/teams"
	defaultRankingsLimit = 30
	maxRankingMembers    = 5
)

// Rankings fetches the world ranking page, capped at limit entries.
func (c *HLTVClient) Rankings(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	doc, errDoc := c.fetch(ctx, rankingsPath)
	if errDoc != nil {
		return nil, errDoc
	}

	return c.parseRankings(doc, limit), nil
}

func (c *HLTVClient) parseRankings(doc *goquery.Document, limit int) []domain.RankingEntry {
	if limit <= 0 {
		limit = defaultRankingsLimit
	}

	var entries []domain.RankingEntry

	doc.Find(".ranked-team").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(entries) >= limit {
			return false
		}

		// A malformed "#N" label falls back to the 1-based position
		// among successfully parsed entries. When an earlier row also
		// failed to parse this produces non-unique rank numbers; that
		// quirk is long-standing upstream behaviour and is kept as-is.
		rankLabel := strings.TrimPrefix(textOr(sel.Find("span.position"), ""), "#")

		rank, errRank := strconv.Atoi(rankLabel)
		if errRank != nil || rank <= 0 {
			rank = len(entries) + 1
		}

		points := 0
		if digits := digitsOnly(textOr(sel.Find("span.points"), "")); digits != "" {
			if parsed, errPoints := strconv.Atoi(digits); errPoints == nil {
				points = parsed
			}
		}

		var members []string

		sel.Find(".rankingNicknames").EachWithBreak(func(_ int, nick *goquery.Selection) bool {
			if len(members) >= maxRankingMembers {
				return false
			}

			if name := strings.TrimSpace(nick.Text()); name != "" {
				members = append(members, name)
			}

			return true
		})

		entries = append(entries, domain.RankingEntry{
			Rank:    rank,
			Title:   textOr(sel.Find("span.name"), "Unknown"),
			Points:  points,
			Members: members,
			URL:     c.absoluteURL(attrOr(sel.Find("a[href*='/team/']"), "href", "")),
		})

		return true
	})

	return entries
}
