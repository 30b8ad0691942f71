package nft

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/KirkDiggler/nft-game-bot/internal/services"
)

// lookupTimeout caps a single chain round trip behind a deferred response
const lookupTimeout = 10 * time.Second

// Responder is the part of *discordgo.Session the handlers talk to
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config is shared by every /nft handler
type Config struct {
	ServiceProvider *services.Provider
	IPFSGateway     string
}

func deferResponse(s Responder, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}
	return nil
}

func editContent(s Responder, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

func editEmbeds(s Responder, i *discordgo.InteractionCreate, embeds ...*discordgo.MessageEmbed) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &embeds,
	})
	return err
}

// ErrorMessage turns a lookup failure into something a player can act on
func ErrorMessage(err error) string {
	switch apperr.GetCode(err) {
	case apperr.CodeInvalidArgument:
		return "❌ That doesn't look like a valid wallet address."
	case apperr.CodeNotFound:
		return "🤷 That wallet doesn't hold a character yet."
	case apperr.CodeOutOfRange:
		return "⚠️ This character's stats are too large to display."
	case apperr.CodeUnavailable:
		return "🔌 Couldn't reach the blockchain. Try again in a moment."
	default:
		return "❌ Something went wrong reading the contract."
	}
}

type ShowRequest struct {
	Session     Responder
	Interaction *discordgo.InteractionCreate
	Wallet      string
}

// ShowHandler handles /nft character
type ShowHandler struct {
	services *services.Provider
	gateway  string
}

func NewShowHandler(cfg *Config) *ShowHandler {
	return &ShowHandler{
		services: cfg.ServiceProvider,
		gateway:  cfg.IPFSGateway,
	}
}

func (h *ShowHandler) Handle(req *ShowRequest) error {
	if err := deferResponse(req.Session, req.Interaction); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	snapshot, err := h.services.CharacterService.GetCharacter(ctx, req.Wallet)
	if err != nil {
		if !apperr.IsNotFound(err) && !apperr.IsInvalidArgument(err) {
			log.Printf("Failed to load character for %s: %v", req.Wallet, err)
		}
		return editContent(req.Session, req.Interaction, ErrorMessage(err))
	}

	return editEmbeds(req.Session, req.Interaction, CharacterEmbed(snapshot, h.gateway))
}

type RosterRequest struct {
	Session     Responder
	Interaction *discordgo.InteractionCreate
}

// RosterHandler handles /nft roster
type RosterHandler struct {
	services *services.Provider
	gateway  string
}

func NewRosterHandler(cfg *Config) *RosterHandler {
	return &RosterHandler{
		services: cfg.ServiceProvider,
		gateway:  cfg.IPFSGateway,
	}
}

func (h *RosterHandler) Handle(req *RosterRequest) error {
	if err := deferResponse(req.Session, req.Interaction); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	chars, err := h.services.CharacterService.ListDefaultCharacters(ctx)
	if err != nil {
		log.Printf("Failed to list default characters: %v", err)
		return editContent(req.Session, req.Interaction, ErrorMessage(err))
	}
	if len(chars) == 0 {
		return editContent(req.Session, req.Interaction, "No characters are available to mint yet.")
	}

	return editEmbeds(req.Session, req.Interaction, RosterEmbeds(chars, h.gateway)...)
}

type BossRequest struct {
	Session     Responder
	Interaction *discordgo.InteractionCreate
}

// BossHandler handles /nft boss
type BossHandler struct {
	services *services.Provider
	gateway  string
}

func NewBossHandler(cfg *Config) *BossHandler {
	return &BossHandler{
		services: cfg.ServiceProvider,
		gateway:  cfg.IPFSGateway,
	}
}

func (h *BossHandler) Handle(req *BossRequest) error {
	if err := deferResponse(req.Session, req.Interaction); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	boss, err := h.services.CharacterService.GetBoss(ctx)
	if err != nil {
		log.Printf("Failed to load boss: %v", err)
		return editContent(req.Session, req.Interaction, ErrorMessage(err))
	}

	return editEmbeds(req.Session, req.Interaction, BossEmbed(boss, h.gateway))
}

type ContractRequest struct {
	Session     Responder
	Interaction *discordgo.InteractionCreate
}

// ContractHandler handles /nft contract. It never touches the chain so it
// answers immediately instead of deferring.
type ContractHandler struct {
	services *services.Provider
}

func NewContractHandler(cfg *Config) *ContractHandler {
	return &ContractHandler{services: cfg.ServiceProvider}
}

func (h *ContractHandler) Handle(req *ContractRequest) error {
	address := h.services.CharacterService.ContractAddress()
	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{ContractEmbed(address)},
		},
	})
}
