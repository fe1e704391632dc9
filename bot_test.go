package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()

	var config appConfig

	return NewBot(config, newTestClient(t))
}

func TestBotUnknownCommand(t *testing.T) {
	t.Parallel()

	_, known := newTestBot(t).Handle(context.Background(), "/weather tomorrow")
	require.False(t, known)
}

func TestBotMatches(t *testing.T) {
	t.Parallel()

	bot := newTestBot(t)

	reply, known := bot.Handle(context.Background(), "/cs2比赛")
	require.True(t, known)
	require.True(t, strings.HasPrefix(reply, "【CS2实时比赛】\n"))
	require.Contains(t, reply, "1. Vitality vs MOUZ")
	require.Contains(t, reply, "时间: 10:30 | BO5")
	require.Contains(t, reply, "赛事: Blast Premier Finals")

	// Aliases dispatch to the same handler, with or without the slash.
	aliased, known := bot.Handle(context.Background(), "cs2匹配")
	require.True(t, known)
	require.Equal(t, reply, aliased)
}

func TestBotRankings(t *testing.T) {
	t.Parallel()

	reply, known := newTestBot(t).Handle(context.Background(), "/战队排名")
	require.True(t, known)
	require.True(t, strings.HasPrefix(reply, "【CS2战队排名 Top 10】\n"))
	require.Contains(t, reply, "1. Vitality (930分)")
}

func TestBotResults(t *testing.T) {
	t.Parallel()

	reply, known := newTestBot(t).Handle(context.Background(), "/cs2结果")
	require.True(t, known)
	require.True(t, strings.HasPrefix(reply, "【最近比赛结果】\n"))
	require.Contains(t, reply, "1. Vitality 2-0 MOUZ")
	require.Contains(t, reply, "胜者: Vitality | 赛事: BLAST Premier World Final")

	// A 0-0 scoreline credits team two; there is no draw notion.
	require.Contains(t, reply, "胜者: paiN | 赛事: Regional League")
}

func TestBotTeam(t *testing.T) {
	t.Parallel()

	bot := newTestBot(t)

	reply, known := bot.Handle(context.Background(), "/cs2战队 NAVI")
	require.True(t, known)
	require.Contains(t, reply, "【Natus Vincere 战队信息】")
	require.Contains(t, reply, "排名: #4")
	require.Contains(t, reply, "阵容: Aleksib, iM, b1t, jL, w0nderful")
	require.Contains(t, reply, "教练: B1ad3")

	missing, known := bot.Handle(context.Background(), "/cs2战队")
	require.True(t, known)
	require.Equal(t, "请提供战队名称。\n示例: /cs2战队 Vitality", missing)
}

func TestBotPlayer(t *testing.T) {
	t.Parallel()

	bot := newTestBot(t)

	reply, known := bot.Handle(context.Background(), "/cs2选手 s1mple")
	require.True(t, known)
	require.Contains(t, reply, "【Oleksandr Kostyliev 选手信息】")
	require.Contains(t, reply, "ID: s1mple")
	require.Contains(t, reply, "战队: Natus Vincere")
	require.Contains(t, reply, "国籍: Ukraine")
	require.Contains(t, reply, "Rating 2.0: 1.21")

	missing, known := bot.Handle(context.Background(), "/cs2选手")
	require.True(t, known)
	require.Equal(t, "请提供选手名称。\n示例: /cs2选手 ZywOo", missing)

	notFound, known := bot.Handle(context.Background(), "/cs2选手 nobody")
	require.True(t, known)
	require.Equal(t, "未找到选手 'nobody'", notFound)
}

func TestBotUsage(t *testing.T) {
	t.Parallel()

	usage := newTestBot(t).Usage()
	require.True(t, strings.HasPrefix(usage, "指令:\n"))

	for _, name := range []string{"/cs2比赛", "/cs2战队", "/cs2结果", "/cs2排名", "/cs2选手"} {
		require.Contains(t, usage, name)
	}
}
