package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMatches(t *testing.T) {
	t.Parallel()

	client := newParserClient()
	matches := client.parseMatches(docFromFile(t, "matches.html"))

	require.Len(t, matches, 3)

	first := matches[0]
	require.Equal(t, "Vitality", first.Team1)
	require.Equal(t, "MOUZ", first.Team2)
	require.Equal(t, "Blast Premier Finals", first.Event)
	require.Equal(t, "10:30", first.Time)
	require.Equal(t, "bo5", first.BoType)
	require.Equal(t, defaultBaseURL+"/matches/2371234/vitality-vs-mouz-blast-premier-finals", first.URL)
	require.Equal(t, 0, first.Score1)
	require.Equal(t, 0, first.Score2)

	// Slug without "-vs-" plus missing time and meta nodes.
	second := matches[1]
	require.Equal(t, "G2", second.Team1)
	require.Equal(t, "Falcons", second.Team2)
	require.Equal(t, "Unknown", second.Event)
	require.Equal(t, "TBD", second.Time)
	require.Equal(t, "bo3", second.BoType)

	require.Equal(t, "Iem Katowice 2025", matches[2].Event)
}

func TestParseMatchesCap(t *testing.T) {
	t.Parallel()

	var markup strings.Builder
	for i := 0; i < maxMatches*2; i++ {
		fmt.Fprintf(&markup, `<div class="match">
			<a href="/matches/%d/alpha-vs-beta-test-event">
				<div class="match-teamname">Alpha</div>
				<div class="match-teamname">Beta</div>
			</a>
		</div>`, i)
	}

	client := newParserClient()
	matches := client.parseMatches(docFromString(t, markup.String()))

	require.Len(t, matches, maxMatches)
	require.Equal(t, "Test Event", matches[0].Event)
}

func TestParseMatchesIdempotent(t *testing.T) {
	t.Parallel()

	client := newParserClient()
	doc := docFromFile(t, "matches.html")

	require.Equal(t, client.parseMatches(doc), client.parseMatches(doc))
}

func TestDeriveEventName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Blast Premier Finals",
		deriveEventName("/matches/1234/teama-vs-teamb-blast-premier-finals"))
	require.Equal(t, "Unknown", deriveEventName("/matches/1234/showmatch"))
	require.Equal(t, "Unknown", deriveEventName("/matches/1234/teama-vs-teamb"))
	require.Equal(t, "Unknown", deriveEventName(""))
}

func TestMatchesFetch(t *testing.T) {
	t.Parallel()

	matches, errMatches := newTestClient(t).Matches(context.Background())
	require.NoError(t, errMatches)
	require.Len(t, matches, 3)
}

func TestMatchesFetchFailure(t *testing.T) {
	t.Parallel()

	_, errMatches := newFailingClient(t).Matches(context.Background())
	require.Error(t, errMatches)
}
