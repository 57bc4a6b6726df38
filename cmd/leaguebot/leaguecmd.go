/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/leaguerank/league"
	"github.com/mikeb26/leaguerank/tabular"
)

type LeagueSubCommand string

const (
	LeagueAboutCmd     LeagueSubCommand = "about"
	LeagueHelpCmd      LeagueSubCommand = "help"
	LeagueStandingsCmd LeagueSubCommand = "standings"
)

var leagueSubCmdHdlrs = map[LeagueSubCommand]CmdHandler{
	LeagueAboutCmd:     leagueAboutCmdHandler,
	LeagueHelpCmd:      leagueHelpCmdHandler,
	LeagueStandingsCmd: leagueStandingsCmdHandler,
}

func leagueCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := leagueHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := leagueSubCmdHdlrs[LeagueSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

func newEphemeralResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

//go:embed about.txt
var aboutText string

func leagueAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func leagueHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(helpText)

	return resp
}

// leagueStandingsCmdHandler handles /league standings url:<sheet>
func leagueStandingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	data := inter.ApplicationCommandData()
	broadcast := false // default
	url := ""
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "url" {
				url = opt.StringValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	if url == "" {
		resp.Data.Content = "Please provide a results sheet url."
		log.Printf("leaguebot.standings: %v", resp.Data.Content)
		return resp
	}
	// Load also reads local paths and s3:// objects; only the operator may
	// name those
	if !tabular.IsURL(url) {
		resp.Data.Content = fmt.Sprintf("Only http:// and https:// results sheets are supported; got %q.",
			url)
		log.Printf("leaguebot.standings: rejected location %q", url)
		return resp
	}

	records, err := leagueClient.Load(ctx, url)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading %v: %v", url, err)
		log.Printf("leaguebot.standings: %v", resp.Data.Content)
		return resp
	}
	standings, err := league.Compute(records, leagueCfg.ScoreMap())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error ranking %v: %v", url, err)
		log.Printf("leaguebot.standings: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content =
		fmt.Sprintf("```\n%s```",
			truncateContent(tabular.BuildStandingsOutput(standings)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
