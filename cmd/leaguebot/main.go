/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/leaguerank/internal"
	"github.com/mikeb26/leaguerank/tabular"
)

const (
	tokenEnv     = "LEAGUEBOT_TOKEN"
	pubKeyEnv    = "LEAGUEBOT_PUBKEY"
	appIDEnv     = "LEAGUEBOT_APPID"
	cmdIDEnv     = "LEAGUEBOT_CMDID"
	cmdHashEnv   = "LEAGUEBOT_CMDHASH"
	listenAddr   = ":8080"
	interactPath = "/DiscordBot/Interaction"
)

var (
	client    *discordgo.Session
	botPubKey ed25519.PublicKey
	botAppId  string

	leagueCfg    *internal.Config
	leagueClient *tabular.Client
)

type TopLevelCommand string

const (
	LeagueCmd TopLevelCommand = "league"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	LeagueCmd: leagueCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("leaguebot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("leaguebot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("leaguebot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("leaguebot.int: unimplemented interation type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("leaguebot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(rawResp); err != nil {
		log.Printf("leaguebot.int: failed to write resp: err:%v", err)
	}
}

func mustGetenv(name string) string {
	val := os.Getenv(name)
	if val == "" {
		log.Fatalf("leaguebot.init: %v is not set", name)
	}
	return val
}

func initBot() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	pubKeyBytes, err := hex.DecodeString(mustGetenv(pubKeyEnv))
	if err != nil {
		log.Fatalf("leaguebot.init: Failed to parse public key: %v", err)
	}
	if len(pubKeyBytes) != ed25519.PublicKeySize {
		log.Fatalf("leaguebot.init: public key is %v bytes; want %v",
			len(pubKeyBytes), ed25519.PublicKeySize)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)
	botAppId = mustGetenv(appIDEnv)

	client, err = discordgo.New("Bot " + mustGetenv(tokenEnv))
	if err != nil {
		log.Fatalf("leaguebot.init: Failed to initialize discord client: %v", err)
	}
}

func initLeague(ctx context.Context) {
	var err error
	leagueCfg, err = internal.LoadConfig(internal.DefaultConfigFile)
	if err != nil {
		log.Fatalf("leaguebot.init: %v", err)
	}
	if err := leagueCfg.ScoreMap().Validate(); err != nil {
		log.Fatalf("leaguebot.init: %v", err)
	}
	leagueClient = tabular.NewClient(ctx, leagueCfg.Cache)
}

func cmdHash(cmd *discordgo.ApplicationCommand) string {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		log.Fatalf("leaguebot.reg: failed to marshal cmd: %v", err)
	}
	hash := sha256.Sum256(cmdJson)
	return hex.EncodeToString(hash[:])
}

func leagueCommand() *discordgo.ApplicationCommand {
	broadcastOpt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}

	return &discordgo.ApplicationCommand{
		Name:        string(LeagueCmd),
		Description: "League table commands; try /league help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(LeagueHelpCmd),
				Description: "Show usage for league",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(LeagueAboutCmd),
				Description: "Show information about leaguebot",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(LeagueStandingsCmd),
				Description: "Rank the teams in a results sheet",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "url",
						Description: "URL or s3:// path of a .csv, .xlsx or .html results sheet",
						Required:    true,
					},
					broadcastOpt,
				},
			},
		},
	}
}

func registerSlashCommands() {
	cmd := leagueCommand()
	cmdID := os.Getenv(cmdIDEnv)

	if cmdID == "" {
		created, err := client.ApplicationCommandCreate(botAppId, "", cmd)
		if err != nil {
			log.Printf("leaguebot.reg: failed to register %v: %v", cmd.Name, err)
			return
		}
		log.Printf("leaguebot.reg: registered %v(cmdID:%v); set %v to skip re-registration",
			created.Name, created.ID, cmdIDEnv)
		return
	}

	hash := cmdHash(cmd)
	if hash == os.Getenv(cmdHashEnv) {
		return
	}
	updated, err := client.ApplicationCommandEdit(botAppId, "", cmdID, cmd)
	if err != nil {
		log.Printf("leaguebot.reg: failed to update %v: %v", cmd.Name, err)
		return
	}
	log.Printf("leaguebot.reg: updated %v(cmdID:%v); please set %v to %v",
		updated.Name, updated.ID, cmdHashEnv, hash)
}

func main() {
	initBot()
	initLeague(context.Background())
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("leaguebot.main: starting server on %v%v", hostname, listenAddr)

	http.HandleFunc(interactPath, interactionHandler)
	if err := http.ListenAndServe(listenAddr, nil); err != nil {
		log.Fatalf("leaguebot.main: Serve failed: %v", err)
	}

	log.Printf("leaguebot.main: exiting")
}
