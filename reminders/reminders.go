package reminders

import (
	"fmt"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	"github.com/spf13/viper"

	"github.com/studysoc/discord-bot/embed"
	"github.com/studysoc/discord-bot/prometheus"
	"github.com/studysoc/discord-bot/store"
)

// job is one daily reminder batch.
type job struct {
	name         string
	timeKey      string // viper key holding the wall-clock fire time
	onlyUnbooked bool
	message      string
	note         string // extra instruction shown in the footer
}

var jobs = []job{
	{
		name:         "nightly",
		timeKey:      "remind.nightly",
		onlyUnbooked: true,
		message:      "Your **%s** slot for tomorrow hasn't been booked yet.",
		note:         "Mark the slot BOOKED on the sheet, then run /markbooked.",
	},
	{
		name:    "midnight",
		timeKey: "remind.midnight",
		message: "New day! Your study-room slot is **%s**.",
	},
	{
		name:         "morning",
		timeKey:      "remind.morning",
		onlyUnbooked: true,
		message:      "Reminder: your **%s** slot still isn't booked.",
		note:         "Mark the slot BOOKED on the sheet, then run /markbooked.",
	},
}

// Schedule registers the daily reminder jobs on the scheduler. The caller
// starts the scheduler.
func Schedule(scheduler *gocron.Scheduler, s *discordgo.Session, assignments *store.Store) {
	for _, j := range jobs {
		j := j
		scheduler.Every(1).Day().At(viper.GetString(j.timeKey)).Do(func() {
			run(s, assignments, j)
		})
	}
}

// run sends one reminder batch. A failed DM (user left, DMs disabled) is
// logged and skipped; the rest of the batch still goes out.
func run(s *discordgo.Session, assignments *store.Store, j job) {
	all, err := assignments.Assignments()
	if err != nil {
		log.WithFields(log.Fields{
			"job": j.name,
		}).WithError(err).Error("Failed to load assignments for reminders")
		return
	}

	sent := 0
	for userID, assignment := range all {
		if j.onlyUnbooked && assignment.Booked {
			continue
		}
		if err := send(s, userID, assignment, j); err != nil {
			log.WithFields(log.Fields{
				"job":     j.name,
				"user_id": userID,
			}).WithError(err).Error("Failed to deliver reminder")
			prometheus.ReminderDelivery(err)
			continue
		}
		prometheus.ReminderDelivery(nil)
		sent++
	}
	log.WithFields(log.Fields{
		"job":  j.name,
		"sent": sent,
	}).Info("Reminder batch complete")
}

func send(s *discordgo.Session, userID string, assignment store.Assignment, j job) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("creating DM channel: %w", err)
	}
	emb := embed.NewEmbed().
		SetTitle("Study Room Reminder").
		SetColor(0x128af1).
		SetDescription(fmt.Sprintf(j.message, assignment.Time))
	if j.note != "" {
		emb.SetFooter(j.note)
	}
	if _, err := s.ChannelMessageSendEmbed(channel.ID, emb.MessageEmbed); err != nil {
		return fmt.Errorf("sending DM: %w", err)
	}
	return nil
}
