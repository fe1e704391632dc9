package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kawakaze/hltv-api/domain"
)

const maxTeamMembers = 5

// Team looks up a team by free-text name: search page, then profile
// page. Mirrors the player lookup without the statistics sub-fetch.
func (c *HLTVClient) Team(ctx context.Context, name string) (domain.TeamProfile, error) {
	var profile domain.TeamProfile

	if strings.TrimSpace(name) == "" {
		return profile, domain.ErrEmptyQuery
	}

	searchDoc, errSearch := c.fetch(ctx, searchPath+url.QueryEscape(name))
	if errSearch != nil {
		return profile, errSearch
	}

	href, found := searchDoc.Find("a[href*='/team/']").First().Attr("href")
	if !found {
		return profile, fmt.Errorf("%w: %s", domain.ErrTeamNotFound, name)
	}

	profileDoc, errProfile := c.fetch(ctx, href)
	if errProfile != nil {
		return profile, errProfile
	}

	return c.parseTeamProfile(profileDoc, name, href), nil
}

func (c *HLTVClient) parseTeamProfile(doc *goquery.Document, name string, href string) domain.TeamProfile {
	var members []string

	doc.Find(".bodyshot-team-bg a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(members) >= maxTeamMembers {
			return false
		}

		if nick := strings.TrimSpace(sel.Find(".text-ellipsis").First().Text()); nick != "" {
			members = append(members, nick)
		}

		return true
	})

	return domain.TeamProfile{
		Name:    textOr(doc.Find(".profile-team-name"), name),
		Rank:    textOr(doc.Find(".profile-team-stat:first-child .right"), "N/A"),
		Members: members,
		Coach:   textOr(doc.Find(".profile-team-coach .text-ellipsis"), "Unknown"),
		URL:     c.absoluteURL(href),
	}
}
