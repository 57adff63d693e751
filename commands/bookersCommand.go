package commands

import (
	"context"
	"fmt"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/studysoc/discord-bot/embed"
)

// bookers command
func bookersCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	bookers, err := sheetsManager.Bookers(ctx)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to fetch bookers roster")
		respondTryAgain(ctx, s, i)
		return
	}
	if len(bookers) == 0 {
		respondText(ctx, s, i, "The bookers sheet is empty.")
		return
	}

	body := ""
	for _, booker := range bookers {
		if booker.Assigned() {
			body += fmt.Sprintf("**%s** — %s\n", booker.Time, booker.Name)
		} else {
			body += fmt.Sprintf("**%s** — *unassigned*\n", booker.Time)
		}
	}

	p := message.NewPrinter(language.English)
	emb := embed.NewEmbed().
		SetTitle("Booking Roster").
		SetColor(0x128af1).
		SetDescription(body).
		SetFooter(p.Sprintf("%d of %d slots have a booker", bookers.AssignedCount(), len(bookers)))
	respondEmbed(ctx, s, i, emb)
}
