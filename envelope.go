package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kawakaze/hltv-api/domain"
)

// apiSource identifies this service in every envelope.
const apiSource = "hltv-api"

func successEnvelope[T any](data T, message string) domain.Envelope[T] {
	return domain.Envelope[T]{
		Success:   true,
		Data:      data,
		Message:   message,
		Source:    apiSource,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// emptyEnvelope reports an unsuccessful but normal outcome: nothing was
// found. No error field, that is reserved for hard failures.
func emptyEnvelope[T any](data T, message string) domain.Envelope[T] {
	return domain.Envelope[T]{
		Success:   false,
		Data:      data,
		Message:   message,
		Source:    apiSource,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func errorEnvelope[T any](data T, err error) domain.Envelope[T] {
	return domain.Envelope[T]{
		Success:   false,
		Data:      data,
		Message:   err.Error(),
		Source:    apiSource,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Error:     err.Error(),
	}
}

// The envelope constructors below are the boundary shared by every
// transport: any pipeline failure is converted here, nothing past this
// point returns an error.

func (c *HLTVClient) MatchesEnvelope(ctx context.Context) domain.Envelope[[]domain.MatchSummary] {
	matches, errMatches := c.Matches(ctx)
	if errMatches != nil {
		return errorEnvelope([]domain.MatchSummary{}, errMatches)
	}

	if len(matches) == 0 {
		return emptyEnvelope([]domain.MatchSummary{}, "当前没有找到比赛信息")
	}

	return successEnvelope(matches, fmt.Sprintf("成功获取 %d 场比赛", len(matches)))
}

func (c *HLTVClient) RankingsEnvelope(ctx context.Context, limit int) domain.Envelope[[]domain.RankingEntry] {
	rankings, errRankings := c.Rankings(ctx, limit)
	if errRankings != nil {
		return errorEnvelope([]domain.RankingEntry{}, errRankings)
	}

	if len(rankings) == 0 {
		return emptyEnvelope([]domain.RankingEntry{}, "当前没有战队排名数据")
	}

	return successEnvelope(rankings, fmt.Sprintf("成功获取 %d 支战队排名", len(rankings)))
}

func (c *HLTVClient) ResultsEnvelope(ctx context.Context) domain.Envelope[[]domain.ResultEntry] {
	results, errResults := c.Results(ctx)
	if errResults != nil {
		return errorEnvelope([]domain.ResultEntry{}, errResults)
	}

	if len(results) == 0 {
		return emptyEnvelope([]domain.ResultEntry{}, "当前没有找到比赛结果")
	}

	return successEnvelope(results, fmt.Sprintf("成功获取 %d 场比赛结果", len(results)))
}

func (c *HLTVClient) EventsEnvelope(ctx context.Context) domain.Envelope[[]domain.EventSummary] {
	events, errEvents := c.Events(ctx)
	if errEvents != nil {
		return errorEnvelope([]domain.EventSummary{}, errEvents)
	}

	if len(events) == 0 {
		return emptyEnvelope([]domain.EventSummary{}, "当前没有找到赛事信息")
	}

	return successEnvelope(events,
		fmt.Sprintf("成功获取 %d 场重要赛事 (S级: Major, A级: 国际LAN)", len(events)))
}

func (c *HLTVClient) PlayerEnvelope(ctx context.Context, name string) domain.Envelope[domain.PlayerProfile] {
	profile, errProfile := c.Player(ctx, name)
	if errProfile != nil {
		if errors.Is(errProfile, domain.ErrPlayerNotFound) {
			return emptyEnvelope(domain.PlayerProfile{}, fmt.Sprintf("未找到选手 '%s'", name))
		}

		return errorEnvelope(domain.PlayerProfile{}, errProfile)
	}

	return successEnvelope(profile, "")
}

func (c *HLTVClient) TeamEnvelope(ctx context.Context, name string) domain.Envelope[domain.TeamProfile] {
	profile, errProfile := c.Team(ctx, name)
	if errProfile != nil {
		if errors.Is(errProfile, domain.ErrTeamNotFound) {
			return emptyEnvelope(domain.TeamProfile{}, fmt.Sprintf("未找到战队 '%s'", name))
		}

		return errorEnvelope(domain.TeamProfile{}, errProfile)
	}

	return successEnvelope(profile, "")
}
