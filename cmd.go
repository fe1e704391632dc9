package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kawakaze/hltv-api/domain"
)

var (
	BuildVersion = "dev" //nolint:gochecknoglobals
	BuildCommit  = "dev" //nolint:gochecknoglobals
)

func createAppDeps() (appConfig, *HLTVClient, error) {
	var config appConfig

	if errConfig := readConfig(&config); errConfig != nil {
		return config, nil, errConfig
	}

	setupLogger(config.LogLevel)

	client := NewHLTVClient(config.BaseURL, time.Duration(config.FetchTimeoutSecs)*time.Second)

	return config, client, nil
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:     "hltv-api",
		Short:   "CS2 match, ranking, result, event, player and team data scraped from HLTV",
		Version: fmt.Sprintf("%s (%s)", BuildVersion, BuildCommit),
	}

	root.AddCommand(serveCmd(), matchesCmd(), rankingsCmd(), resultsCmd(),
		eventsCmd(), playerCmd(), teamCmd())

	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "serve",
		Short: "Run the HTTP API service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, _, errDeps := createAppDeps()
			if errDeps != nil {
				return errDeps
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return NewApp(config).Start(ctx)
		},
	}
}

func newTableWriter() table.Writer {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.SetStyle(table.StyleLight)

	return writer
}

func matchesCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "matches",
		Short: "List upcoming matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, errDeps := createAppDeps()
			if errDeps != nil {
				return errDeps
			}

			envelope := client.MatchesEnvelope(cmd.Context())
			if !envelope.Success {
				fmt.Fprintln(os.Stdout, envelope.Message)

				return nil
			}

			writer := newTableWriter()
			writer.AppendHeader(table.Row{"#", "Team 1", "Team 2", "Time", "Format", "Event"})

			for i, match := range envelope.Data {
				writer.AppendRow(table.Row{
					i + 1, match.Team1, match.Team2, match.Time,
					strings.ToUpper(match.BoType), match.Event,
				})
			}

			writer.Render()

			return nil
		},
	}
}

func rankingsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "rankings",
		Short: "Show the world team ranking",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, errDeps := createAppDeps()
			if errDeps != nil {
				return errDeps
			}

			envelope := client.RankingsEnvelope(cmd.Context(), limit)
			if !envelope.Success {
				fmt.Fprintln(os.Stdout, envelope.Message)

				return nil
			}

			writer := newTableWriter()
			writer.AppendHeader(table.Row{"Rank", "Team", "Points", "Roster"})

			for _, entry := range envelope.Data {
				writer.AppendRow(table.Row{
					entry.Rank, entry.Title, entry.Points, strings.Join(entry.Members, ", "),
				})
			}

			writer.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultRankingsLimit, "Maximum number of teams to show")

	return cmd
}

func resultsCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "results",
		Short: "List recent match results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, errDeps := createAppDeps()
			if errDeps != nil {
				return errDeps
			}

			envelope := client.ResultsEnvelope(cmd.Context())
			if !envelope.Success {
				fmt.Fprintln(os.Stdout, envelope.Message)

				return nil
			}

			writer := newTableWriter()
			writer.AppendHeader(table.Row{"#", "Team 1", "Score", "Team 2", "Event"})

			for i, result := range envelope.Data {
				writer.AppendRow(table.Row{
					i + 1, result.Team1,
					fmt.Sprintf("%d - %d", result.Score1, result.Score2),
					result.Team2, result.Event,
				})
			}

			writer.Render()

			return nil
		},
	}
}

func eventsCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "events",
		Short: "List upcoming top-tier events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, errDeps := createAppDeps()
			if errDeps != nil {
				return errDeps
			}

			envelope := client.EventsEnvelope(cmd.Context())
			if !envelope.Success {
				fmt.Fprintln(os.Stdout, envelope.Message)

				return nil
			}

			writer := newTableWriter()
			writer.AppendHeader(table.Row{"Tier", "Event", "Location", "Start", "End"})

			for _, event := range envelope.Data {
				writer.AppendRow(table.Row{
					event.Tier, event.Name, event.Location, event.StartDate, event.EndDate,
				})
			}

			writer.Render()

			return nil
		},
	}
}

func playerCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "player <name>",
		Short: "Look up a player profile and statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, errDeps := createAppDeps()
			if errDeps != nil {
				return errDeps
			}

			envelope := client.PlayerEnvelope(cmd.Context(), strings.Join(args, " "))
			if !envelope.Success {
				fmt.Fprintln(os.Stdout, envelope.Message)

				return nil
			}

			renderPlayerTable(envelope.Data)

			return nil
		},
	}
}

func renderPlayerTable(player domain.PlayerProfile) {
	writer := newTableWriter()
	writer.AppendHeader(table.Row{"Field", "Value"})

	for _, pair := range [][2]string{
		{"Name", player.Name},
		{"Full name", player.FullName},
		{"Team", player.Team},
		{"Country", player.Country},
		{"Rating", player.Rating},
		{"K/D", player.KDRatio},
		{"KPR", player.KPR},
		{"APR", player.APR},
		{"DPR", player.DPR},
		{"ADR", player.ADR},
		{"KAST", player.KAST},
		{"Impact", player.Impact},
		{"Headshot %", player.HeadshotPct},
		{"Maps", player.MapsPlayed},
		{"Rounds", player.RoundsPlayed},
		{"Total kills", player.TotalKills},
		{"Total deaths", player.TotalDeaths},
		{"URL", player.URL},
	} {
		writer.AppendRow(table.Row{pair[0], pair[1]})
	}

	writer.Render()
}

func teamCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "team <name>",
		Short: "Look up a team profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, errDeps := createAppDeps()
			if errDeps != nil {
				return errDeps
			}

			envelope := client.TeamEnvelope(cmd.Context(), strings.Join(args, " "))
			if !envelope.Success {
				fmt.Fprintln(os.Stdout, envelope.Message)

				return nil
			}

			team := envelope.Data
			writer := newTableWriter()
			writer.AppendHeader(table.Row{"Field", "Value"})
			writer.AppendRow(table.Row{"Name", team.Name})
			writer.AppendRow(table.Row{"Rank", team.Rank})
			writer.AppendRow(table.Row{"Roster", strings.Join(team.Members, ", ")})
			writer.AppendRow(table.Row{"Coach", team.Coach})
			writer.AppendRow(table.Row{"URL", team.URL})
			writer.Render()

			return nil
		},
	}
}
