package main

import (
	"context"
	"fmt"
	"strings"
)

// botHandler renders the reply for one chat command. The optional
// free-text argument is the lookup query; handlers never fail, a
// pipeline problem comes back as the envelope's message text.
type botHandler func(ctx context.Context, arg string) string

type botCommand struct {
	name    string
	aliases []string
	about   string
	handler botHandler
}

// Bot maps chat commands (and their aliases) onto extractor calls and
// formats the returned envelopes as plain text. The surrounding chat
// framework only needs Handle.
type Bot struct {
	config   appConfig
	client   *HLTVClient
	commands map[string]*botCommand
	ordered  []*botCommand
}

func NewBot(config appConfig, client *HLTVClient) *Bot {
	bot := &Bot{
		config:   config,
		client:   client,
		commands: map[string]*botCommand{},
		ordered:  nil,
	}

	bot.register(&botCommand{
		name:    "cs2比赛",
		aliases: []string{"cs2匹配", "查看cs2比赛"},
		about:   "查看当前CS2比赛",
		handler: bot.onMatches,
	})
	bot.register(&botCommand{
		name:    "cs2战队",
		aliases: []string{"查询战队", "cs2队伍"},
		about:   "查询战队信息",
		handler: bot.onTeam,
	})
	bot.register(&botCommand{
		name:    "cs2结果",
		aliases: []string{"查看结果", "cs2结果查询"},
		about:   "查看最近比赛结果",
		handler: bot.onResults,
	})
	bot.register(&botCommand{
		name:    "cs2排名",
		aliases: []string{"战队排名", "csgo排名"},
		about:   "查看战队排名",
		handler: bot.onRankings,
	})
	bot.register(&botCommand{
		name:    "cs2选手",
		aliases: []string{"查询选手", "cs2选手查询"},
		about:   "查询选手信息",
		handler: bot.onPlayer,
	})

	return bot
}

func (b *Bot) register(cmd *botCommand) {
	b.commands[cmd.name] = cmd

	for _, alias := range cmd.aliases {
		b.commands[alias] = cmd
	}

	b.ordered = append(b.ordered, cmd)
}

// Handle dispatches a raw chat message of the form "/<command> [arg]".
// The second return is false when the message is not one of ours.
func (b *Bot) Handle(ctx context.Context, message string) (string, bool) {
	message = strings.TrimPrefix(strings.TrimSpace(message), "/")

	name, arg, _ := strings.Cut(message, " ")

	cmd, known := b.commands[name]
	if !known {
		return "", false
	}

	return cmd.handler(ctx, strings.TrimSpace(arg)), true
}

// Usage lists every command with its primary name, for help output.
func (b *Bot) Usage() string {
	var msg strings.Builder

	msg.WriteString("指令:\n")

	for _, cmd := range b.ordered {
		fmt.Fprintf(&msg, "/%s - %s\n", cmd.name, cmd.about)
	}

	return msg.String()
}

func (b *Bot) onMatches(ctx context.Context, _ string) string {
	envelope := b.client.MatchesEnvelope(ctx)
	if !envelope.Success {
		return fallbackMessage(envelope.Message, "获取比赛信息失败")
	}

	shown := b.config.BotMatchesShown
	if shown <= 0 {
		shown = 8
	}

	var msg strings.Builder

	msg.WriteString("【CS2实时比赛】\n")

	for i, match := range envelope.Data {
		if i >= shown {
			break
		}

		fmt.Fprintf(&msg, "%d. %s vs %s\n", i+1, match.Team1, match.Team2)
		fmt.Fprintf(&msg, "   时间: %s | %s\n", match.Time, strings.ToUpper(match.BoType))
		fmt.Fprintf(&msg, "   赛事: %s\n", match.Event)
	}

	return msg.String()
}

func (b *Bot) onRankings(ctx context.Context, _ string) string {
	shown := b.config.BotRankingsShown
	if shown <= 0 {
		shown = 10
	}

	envelope := b.client.RankingsEnvelope(ctx, shown)
	if !envelope.Success {
		return fallbackMessage(envelope.Message, "获取战队排名失败")
	}

	var msg strings.Builder

	fmt.Fprintf(&msg, "【CS2战队排名 Top %d】\n", shown)

	for i, entry := range envelope.Data {
		if i >= shown {
			break
		}

		fmt.Fprintf(&msg, "%d. %s (%d分)\n", entry.Rank, entry.Title, entry.Points)
	}

	return msg.String()
}

func (b *Bot) onResults(ctx context.Context, _ string) string {
	envelope := b.client.ResultsEnvelope(ctx)
	if !envelope.Success {
		return fallbackMessage(envelope.Message, "获取比赛结果失败")
	}

	shown := b.config.BotResultsShown
	if shown <= 0 {
		shown = 5
	}

	var msg strings.Builder

	msg.WriteString("【最近比赛结果】\n")

	for i, result := range envelope.Data {
		if i >= shown {
			break
		}

		winner := result.Team2
		if result.Score1 > result.Score2 {
			winner = result.Team1
		}

		fmt.Fprintf(&msg, "%d. %s %d-%d %s\n", i+1, result.Team1, result.Score1, result.Score2, result.Team2)
		fmt.Fprintf(&msg, "   胜者: %s | 赛事: %s\n", winner, result.Event)
	}

	return msg.String()
}

func (b *Bot) onTeam(ctx context.Context, arg string) string {
	if arg == "" {
		return "请提供战队名称。\n示例: /cs2战队 Vitality"
	}

	envelope := b.client.TeamEnvelope(ctx, arg)
	if !envelope.Success {
		return fallbackMessage(envelope.Message, fmt.Sprintf("无法获取 %s 的战队信息", arg))
	}

	team := envelope.Data

	var msg strings.Builder

	fmt.Fprintf(&msg, "【%s 战队信息】\n", team.Name)
	fmt.Fprintf(&msg, "排名: %s\n", team.Rank)

	if len(team.Members) > 0 {
		fmt.Fprintf(&msg, "阵容: %s\n", strings.Join(team.Members, ", "))
	}

	if team.Coach != "" && team.Coach != "Unknown" {
		fmt.Fprintf(&msg, "教练: %s\n", team.Coach)
	}

	fmt.Fprintf(&msg, "详情: %s\n", fallbackMessage(team.URL, "N/A"))

	return msg.String()
}

func (b *Bot) onPlayer(ctx context.Context, arg string) string {
	if arg == "" {
		return "请提供选手名称。\n示例: /cs2选手 ZywOo"
	}

	envelope := b.client.PlayerEnvelope(ctx, arg)
	if !envelope.Success {
		return fallbackMessage(envelope.Message, fmt.Sprintf("无法获取 %s 的选手信息", arg))
	}

	player := envelope.Data

	var msg strings.Builder

	fmt.Fprintf(&msg, "【%s 选手信息】\n", player.FullName)
	fmt.Fprintf(&msg, "ID: %s\n", player.Name)
	fmt.Fprintf(&msg, "战队: %s\n", player.Team)
	fmt.Fprintf(&msg, "国籍: %s\n", player.Country)

	if player.Rating != "" && player.Rating != statUnavailable {
		fmt.Fprintf(&msg, "Rating 2.0: %s\n", player.Rating)
	}

	if player.KPR != "" && player.KPR != statUnavailable {
		fmt.Fprintf(&msg, "KPR: %s\n", player.KPR)
	}

	if player.ADR != "" && player.ADR != statUnavailable {
		fmt.Fprintf(&msg, "ADR: %s\n", player.ADR)
	}

	fmt.Fprintf(&msg, "详情: %s\n", fallbackMessage(player.URL, "N/A"))

	return msg.String()
}

func fallbackMessage(value string, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
