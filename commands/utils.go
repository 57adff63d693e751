package commands

import (
	"context"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"

	"github.com/studysoc/discord-bot/embed"
)

// All command responses are ephemeral; the room state is nobody's business
// but the asker's.
const ephemeral = 1 << 6

func respondText(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   ephemeral,
		},
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to respond to interaction")
	}
}

func respondEmbed(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, emb *embed.Embed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{emb.MessageEmbed},
			Flags:  ephemeral,
		},
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to respond to interaction")
	}
}

func respondTryAgain(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondText(ctx, s, i, "Couldn't reach the booking sheet, try again in a bit.")
}
