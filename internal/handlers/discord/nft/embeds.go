package nft

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/nft-game-bot/internal/entities"
)

const (
	colorHealthy  = 0x2ecc71
	colorWounded  = 0xf1c40f
	colorCritical = 0xe74c3c
	colorBoss     = 0x9b59b6
	colorInfo     = 0x3498db

	hpBarWidth = 10

	// Discord rejects messages with more than 10 embeds
	maxEmbedsPerMessage = 10
)

// ResolveImageURL rewrites ipfs:// references onto an HTTP gateway so
// Discord can render them. Other URIs pass through untouched.
func ResolveImageURL(uri, gateway string) string {
	if !strings.HasPrefix(uri, "ipfs://") || gateway == "" {
		return uri
	}
	path := strings.TrimPrefix(uri, "ipfs://")
	path = strings.TrimPrefix(path, "ipfs/")
	return strings.TrimSuffix(gateway, "/") + "/" + path
}

// HPBar renders hp out of maxHp as a fixed-width bar
func HPBar(hp, maxHp int64, width int) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if maxHp > 0 && hp > 0 {
		if hp >= maxHp {
			filled = width
		} else {
			filled = int(hp * int64(width) / maxHp)
			if filled == 0 {
				filled = 1
			}
		}
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func colorForHealth(hp, maxHp int64) int {
	switch {
	case maxHp <= 0 || hp <= 0:
		return colorCritical
	case hp*4 <= maxHp:
		return colorCritical
	case hp*2 <= maxHp:
		return colorWounded
	default:
		return colorHealthy
	}
}

func statFields(char *entities.Character) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:   "❤️ HP",
			Value:  fmt.Sprintf("%s\n**%d/%d**", HPBar(char.Hp, char.MaxHp, hpBarWidth), char.Hp, char.MaxHp),
			Inline: true,
		},
		{
			Name:   "⚔️ Attack Damage",
			Value:  fmt.Sprintf("**%d**", char.AttackDamage),
			Inline: true,
		},
	}
}

// CharacterEmbed renders an owner's character
func CharacterEmbed(snapshot *entities.CharacterSnapshot, gateway string) *discordgo.MessageEmbed {
	char := snapshot.Character

	description := fmt.Sprintf("Owned by `%s`", snapshot.Owner)
	if !char.IsAlive() {
		description += "\n💀 **Defeated**"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎭 %s", char.Name),
		Description: description,
		Color:       colorForHealth(char.Hp, char.MaxHp),
		Fields:      statFields(char),
		Footer:      &discordgo.MessageEmbedFooter{Text: snapshotFooter(snapshot)},
	}
	if char.ImageURI != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: ResolveImageURL(char.ImageURI, gateway)}
	}
	return embed
}

func snapshotFooter(snapshot *entities.CharacterSnapshot) string {
	parts := make([]string, 0, 2)
	if block, err := snapshot.Meta.GetNumber(entities.MetaBlock); err == nil {
		parts = append(parts, fmt.Sprintf("Block #%d", block))
	}
	if snapshot.Meta.GetBoolOrDefault(entities.MetaCached, false) {
		parts = append(parts, "cached")
	}
	if len(parts) == 0 {
		return "Live from chain"
	}
	return strings.Join(parts, " • ")
}

// RosterEmbeds renders the mintable characters, one embed each
func RosterEmbeds(chars []*entities.Character, gateway string) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(chars))
	for i, char := range chars {
		if i == maxEmbedsPerMessage {
			break
		}
		embed := &discordgo.MessageEmbed{
			Title:  fmt.Sprintf("#%d %s", i, char.Name),
			Color:  colorInfo,
			Fields: statFields(char),
		}
		if char.ImageURI != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: ResolveImageURL(char.ImageURI, gateway)}
		}
		embeds = append(embeds, embed)
	}
	return embeds
}

// BossEmbed renders the shared boss
func BossEmbed(boss *entities.Character, gateway string) *discordgo.MessageEmbed {
	description := "The boss everyone is fighting"
	if !boss.IsAlive() {
		description = "🏆 The boss has been defeated!"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("👹 %s", boss.Name),
		Description: description,
		Color:       colorBoss,
		Fields:      statFields(boss),
	}
	if boss.ImageURI != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: ResolveImageURL(boss.ImageURI, gateway)}
	}
	return embed
}

// ContractEmbed shows which contract the bot reads from
func ContractEmbed(address string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📜 Game Contract",
		Description: fmt.Sprintf("`%s`", address),
		Color:       colorInfo,
	}
}
