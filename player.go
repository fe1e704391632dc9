package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kawakaze/hltv-api/domain"
)

const (
	searchPath      = "/search?query="
	playerPathMark  = "/player/"
	playerStatsPath = "/stats/players/"

	statUnavailable = "N/A"
)

type statSourceKind int

const (
	statFromRow statSourceKind = iota
	statFromBox
)

type statSource struct {
	kind  statSourceKind
	label string
}

func row(label string) statSource { return statSource{kind: statFromRow, label: label} }
func box(label string) statSource { return statSource{kind: statFromBox, label: label} }

// statFallbacks maps each profile statistic to its ordered source
// chain, first match wins. Stats pages have shipped the same figure in
// different places over time, so the chain is data rather than control
// flow; a new markup variant only needs another entry here.
var statFallbacks = map[string][]statSource{
	"rating":        {row("rating 2.0"), box("rating")},
	"kd_ratio":      {row("k/d ratio")},
	"dpr":           {row("deaths / round"), box("dpr")},
	"kast":          {row("kast"), box("kast")},
	"impact":        {row("impact rating")},
	"adr":           {row("damage / round"), box("adr")},
	"kpr":           {row("kills / round"), box("kpr")},
	"apr":           {row("assists / round")},
	"headshot_pct":  {row("headshot %")},
	"maps_played":   {row("maps played")},
	"rounds_played": {row("rounds played")},
	"total_kills":   {row("total kills")},
	"total_deaths":  {row("total deaths")},
}

// summaryBoxKeys are matched by prefix against each summary box label,
// first hit claims the box.
var summaryBoxKeys = []string{"KAST", "DPR", "ADR", "KPR", "Rating"}

type playerStats struct {
	rows  map[string]string
	boxes map[string]string
}

func (s playerStats) field(name string) string {
	for _, source := range statFallbacks[name] {
		switch source.kind {
		case statFromRow:
			if value, ok := s.rows[source.label]; ok && value != "" {
				return value
			}
		case statFromBox:
			if value, ok := s.boxes[source.label]; ok && value != "" {
				return value
			}
		}
	}

	return statUnavailable
}

// Player looks up a player by free-text name: search page, then profile
// page, then a best-effort statistics page. A search without a player
// link returns domain.ErrPlayerNotFound, which is a normal outcome and
// not a fetch failure.
func (c *HLTVClient) Player(ctx context.Context, name string) (domain.PlayerProfile, error) {
	var profile domain.PlayerProfile

	if strings.TrimSpace(name) == "" {
		return profile, domain.ErrEmptyQuery
	}

	searchDoc, errSearch := c.fetch(ctx, searchPath+url.QueryEscape(name))
	if errSearch != nil {
		return profile, errSearch
	}

	href, found := searchDoc.Find("a[href*='/player/']").First().Attr("href")
	if !found {
		return profile, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, name)
	}

	playerID, playerSlug := profileHrefParts(href)

	profileDoc, errProfile := c.fetch(ctx, href)
	if errProfile != nil {
		return profile, errProfile
	}

	profile = c.parsePlayerProfile(profileDoc, name, href)

	stats := playerStats{rows: map[string]string{}, boxes: map[string]string{}}

	if playerID != "" && playerSlug != "" {
		statsDoc, errStats := c.fetch(ctx, playerStatsPath+playerID+"/"+playerSlug)
		if errStats != nil {
			// Best effort only, the lookup still succeeds with the
			// statistics left at their defaults.
			slog.Warn("Failed to fetch player stats page",
				slog.String("player", name), ErrAttr(errStats))
		} else {
			stats = parsePlayerStats(statsDoc)
		}
	}

	applyPlayerStats(&profile, stats)

	return profile, nil
}

// profileHrefParts splits "/player/<id>/<slug>" into id and slug, both
// empty when the href is shorter than expected.
func profileHrefParts(href string) (string, string) {
	parts := strings.Split(strings.Trim(href, "/"), "/")

	var id, slug string

	if len(parts) > 1 {
		id = parts[1]
	}

	if len(parts) > 2 {
		slug = parts[2]
	}

	return id, slug
}

func (c *HLTVClient) parsePlayerProfile(doc *goquery.Document, name string, href string) domain.PlayerProfile {
	return domain.PlayerProfile{
		Name:     name,
		FullName: textOr(doc.Find(".playerRealname"), name),
		Team:     textOr(doc.Find(".playerTeam a"), "Unknown"),
		Country:  attrOr(doc.Find(".playerRealname .flag"), "title", "Unknown"),
		Rating:   textOr(doc.Find(".player-stat .statsVal"), statUnavailable),
		URL:      c.absoluteURL(href),
	}
}

func parsePlayerStats(doc *goquery.Document) playerStats {
	stats := playerStats{rows: map[string]string{}, boxes: map[string]string{}}

	doc.Find(".stats-row").Each(func(_ int, sel *goquery.Selection) {
		spans := sel.Find("span")
		if spans.Length() < 2 {
			return
		}

		label := strings.ToLower(strings.TrimSpace(spans.Eq(0).Text()))
		value := strings.TrimSpace(spans.Eq(1).Text())

		if label != "" && value != "" {
			stats.rows[label] = value
		}
	})

	doc.Find(".player-summary-stat-box-data-wrapper").Each(func(_ int, sel *goquery.Selection) {
		label := strings.TrimSpace(sel.Find(".player-summary-stat-box-data-text").First().Text())
		value := strings.TrimSpace(sel.Find(".player-summary-stat-box-data").First().Text())

		if label == "" || value == "" {
			return
		}

		for _, key := range summaryBoxKeys {
			if strings.HasPrefix(label, key) {
				stats.boxes[strings.ToLower(key)] = value

				break
			}
		}
	})

	return stats
}

// applyPlayerStats fills the statistic fields through the fallback
// table. The profile-page headline rating takes precedence over
// anything the statistics page offers.
func applyPlayerStats(profile *domain.PlayerProfile, stats playerStats) {
	if profile.Rating == statUnavailable {
		profile.Rating = stats.field("rating")
	}

	profile.KDRatio = stats.field("kd_ratio")
	profile.DPR = stats.field("dpr")
	profile.KAST = stats.field("kast")
	profile.Impact = stats.field("impact")
	profile.ADR = stats.field("adr")
	profile.KPR = stats.field("kpr")
	profile.APR = stats.field("apr")
	profile.HeadshotPct = stats.field("headshot_pct")
	profile.MapsPlayed = stats.field("maps_played")
	profile.RoundsPlayed = stats.field("rounds_played")
	profile.TotalKills = stats.field("total_kills")
	profile.TotalDeaths = stats.field("total_deaths")
}
