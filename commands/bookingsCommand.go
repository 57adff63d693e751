package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/studysoc/discord-bot/config"
	"github.com/studysoc/discord-bot/embed"
	"github.com/studysoc/discord-bot/schedule"
)

// bookings command
func bookingsCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sched, err := sheetsManager.Schedule(ctx)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to fetch schedule")
		respondTryAgain(ctx, s, i)
		return
	}

	now := time.Now().In(config.Timezone())
	status := schedule.ResolveCurrent(now, sched)

	emb := embed.NewEmbed().SetTitle("Study Room")
	switch {
	case status.Booked:
		emb.SetColor(0xf12a12)
		emb.SetDescription(fmt.Sprintf("The room is **booked** for the %s slot.", schedule.TimeLabel(status.Slot)))
		emb.AddField("Booked until", fmt.Sprintf(
			"%s on %s",
			schedule.TimeLabel(status.BookedUntil),
			schedule.DateLabel(status.BookedUntil),
		))
	case status.Value != schedule.StatusNotBooked:
		// The cell holds occupant text rather than a plain BOOKED flag.
		emb.SetColor(0xf1a012)
		emb.SetDescription(fmt.Sprintf("The %s slot is marked: %s", schedule.TimeLabel(status.Slot), status.Value))
	default:
		emb.SetColor(0x128af1)
		emb.SetDescription(fmt.Sprintf("The room is **free** for the %s slot.", schedule.TimeLabel(status.Slot)))
	}

	booked, total := sched.BookedCount(schedule.DateLabel(now))
	p := message.NewPrinter(language.English)
	emb.SetFooter(p.Sprintf("%d of %d slots booked today", booked, total))
	respondEmbed(ctx, s, i, emb)
}
