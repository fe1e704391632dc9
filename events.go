package main

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kawakaze/hltv-api/domain"
)

const eventsPath = "/events?eventType="

// eventTiers lists the tournament tiers worth surfacing. Regional and
// online tiers are intentionally not fetched.
var eventTiers = []struct {
	eventType string
	tier      string
	tierName  string
}{
	{"MAJOR", "S", "Major"},
	{"INTLLAN", "A", "国际LAN"},
}

// Events fetches the listing page for each configured tier. A tier page
// that fails to load is skipped so the remaining tiers still surface.
func (c *HLTVClient) Events(ctx context.Context) ([]domain.EventSummary, error) {
	var events []domain.EventSummary

	for _, tier := range eventTiers {
		doc, errDoc := c.fetch(ctx, eventsPath+tier.eventType)
		if errDoc != nil {
			slog.Warn("Failed to fetch events tier",
				slog.String("event_type", tier.eventType), ErrAttr(errDoc))

			continue
		}

		events = append(events, c.parseEvents(doc, tier.eventType, tier.tier, tier.tierName)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].StartDate == "" {
			return false
		}

		if events[j].StartDate == "" {
			return true
		}

		return events[i].StartDate < events[j].StartDate
	})

	return events, nil
}

func (c *HLTVClient) parseEvents(doc *goquery.Document, eventType string, tier string, tierName string) []domain.EventSummary {
	var events []domain.EventSummary

	doc.Find("a.big-event").Each(func(_ int, sel *goquery.Selection) {
		href, hasHref := sel.Attr("href")
		if !hasHref {
			return
		}

		start, end := eventDates(sel)

		events = append(events, domain.EventSummary{
			Name:      textOr(sel.Find(".big-event-name"), "Unknown"),
			Tier:      tier,
			TierName:  tierName,
			EventType: eventType,
			Location:  textOr(sel.Find(".big-event-location"), "TBD"),
			StartDate: start,
			EndDate:   end,
			URL:       c.absoluteURL(href),
		})
	})

	doc.Find("a.small-event").Each(func(_ int, sel *goquery.Selection) {
		href, hasHref := sel.Attr("href")
		if !hasHref {
			return
		}

		start, end := eventDates(sel)

		events = append(events, domain.EventSummary{
			Name:      textOr(sel.Find(".name"), "Unknown"),
			Tier:      tier,
			TierName:  tierName,
			EventType: eventType,
			Location:  "TBD",
			StartDate: start,
			EndDate:   end,
			URL:       c.absoluteURL(href),
		})
	})

	return events
}

// eventDates reads the first two data-unix millisecond timestamps of a
// fragment. Both must be present, partially dated events stay undated.
func eventDates(sel *goquery.Selection) (string, string) {
	var stamps []string

	sel.Find("[data-unix]").Each(func(_ int, node *goquery.Selection) {
		if value, exists := node.Attr("data-unix"); exists {
			stamps = append(stamps, value)
		}
	})

	if len(stamps) < 2 {
		return "", ""
	}

	return unixMillisDate(stamps[0]), unixMillisDate(stamps[1])
}

func unixMillisDate(value string) string {
	millis, errMillis := strconv.ParseInt(value, 10, 64)
	if errMillis != nil {
		return ""
	}

	return time.UnixMilli(millis).UTC().Format("2006-01-02")
}
