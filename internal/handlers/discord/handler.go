package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/nft-game-bot/internal/handlers/discord/nft"
	"github.com/KirkDiggler/nft-game-bot/internal/services"
)

const (
	commandName  = "nft"
	walletOption = "wallet"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	showHandler     *nft.ShowHandler
	rosterHandler   *nft.RosterHandler
	bossHandler     *nft.BossHandler
	contractHandler *nft.ContractHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	IPFSGateway     string
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	nftCfg := &nft.Config{
		ServiceProvider: cfg.ServiceProvider,
		IPFSGateway:     cfg.IPFSGateway,
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		showHandler:     nft.NewShowHandler(nftCfg),
		rosterHandler:   nft.NewRosterHandler(nftCfg),
		bossHandler:     nft.NewBossHandler(nftCfg),
		contractHandler: nft.NewContractHandler(nftCfg),
	}
}

// Commands returns the slash commands the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandName,
			Description: "Look up characters in the NFT game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "character",
					Description: "Show the character a wallet holds",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        walletOption,
							Description: "Wallet address (0x...)",
							Required:    true,
						},
					},
				},
				{
					Name:        "roster",
					Description: "List the characters available to mint",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "boss",
					Description: "Show the boss and its remaining HP",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "contract",
					Description: "Show the game contract address",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	}
}

func (h *Handler) handleCommand(s nft.Responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != commandName || len(data.Options) == 0 {
		return
	}

	subcommand := data.Options[0]

	var err error
	switch subcommand.Name {
	case "character":
		err = h.showHandler.Handle(&nft.ShowRequest{
			Session:     s,
			Interaction: i,
			Wallet:      stringOption(subcommand.Options, walletOption),
		})
	case "roster":
		err = h.rosterHandler.Handle(&nft.RosterRequest{Session: s, Interaction: i})
	case "boss":
		err = h.bossHandler.Handle(&nft.BossRequest{Session: s, Interaction: i})
	case "contract":
		err = h.contractHandler.Handle(&nft.ContractRequest{Session: s, Interaction: i})
	default:
		return
	}

	if err != nil {
		log.Printf("Error handling /%s %s: %v", commandName, subcommand.Name, err)
	}
}

func stringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
