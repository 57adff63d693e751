package status

import (
	"context"
	"fmt"
	"time"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"

	"github.com/studysoc/discord-bot/config"
	"github.com/studysoc/discord-bot/schedule"
	"github.com/studysoc/discord-bot/sheets"
)

// Status keeps the bot's presence in sync with the room. The schedule comes
// from the cache manager, so the loop only hits the sheet when the TTL lapses.
func Status(s *discordgo.Session, manager *sheets.Manager) {
	for {
		roomPresence(s, manager)
		wait := time.After(time.Minute)
		<-wait
	}
}

func roomPresence(s *discordgo.Session, manager *sheets.Manager) {
	sched, err := manager.Schedule(context.Background())
	if err != nil {
		log.Error("Failed to fetch schedule for presence: " + err.Error())
		return
	}
	now := time.Now().In(config.Timezone())
	status := schedule.ResolveCurrent(now, sched)
	if status.Booked {
		s.UpdateGameStatus(0, fmt.Sprintf("Room booked until %s", schedule.TimeLabel(status.BookedUntil)))
	} else {
		s.UpdateGameStatus(0, fmt.Sprintf("Room free at %s", schedule.TimeLabel(status.Slot)))
	}
}
