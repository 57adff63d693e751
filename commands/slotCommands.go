package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/studysoc/discord-bot/embed"
)

// assignslot command
func assignSlot(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var user *discordgo.User
	var timeLabel string
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "user":
			user = option.UserValue(s)
		case "time":
			timeLabel = option.StringValue()
		}
	}
	if user == nil || timeLabel == "" {
		respondText(ctx, s, i, "Usage: /assignslot user time")
		return
	}

	if err := slots.AssignSlot(user.ID, timeLabel); err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to save slot assignment")
		respondText(ctx, s, i, "Couldn't save the assignment, try again in a bit.")
		return
	}
	respondText(ctx, s, i, fmt.Sprintf("Assigned the **%s** slot to %s.", timeLabel, user.Mention()))
}

// markbooked command
func markBooked(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var user *discordgo.User
	for _, option := range i.ApplicationCommandData().Options {
		if option.Name == "user" {
			user = option.UserValue(s)
		}
	}
	if user == nil {
		respondText(ctx, s, i, "Usage: /markbooked user")
		return
	}

	found, err := slots.MarkBooked(user.ID)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to mark assignment booked")
		respondText(ctx, s, i, "Couldn't update the assignment, try again in a bit.")
		return
	}
	if !found {
		respondText(ctx, s, i, fmt.Sprintf("%s has no assigned slot.", user.Mention()))
		return
	}
	respondText(ctx, s, i, fmt.Sprintf("Marked %s's slot as booked.", user.Mention()))
}

// showassignments command
func showAssignments(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	assignments, err := slots.Assignments()
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to load assignments")
		respondText(ctx, s, i, "Couldn't read the assignment store, try again in a bit.")
		return
	}
	if len(assignments) == 0 {
		respondText(ctx, s, i, "Nobody has an assigned slot yet.")
		return
	}

	userIDs := make([]string, 0, len(assignments))
	for userID := range assignments {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	booked := 0
	body := ""
	for _, userID := range userIDs {
		assignment := assignments[userID]
		mark := "❌ not booked"
		if assignment.Booked {
			mark = "✅ booked"
			booked++
		}
		body += fmt.Sprintf("<@%s> — **%s** (%s)\n", userID, assignment.Time, mark)
	}

	p := message.NewPrinter(language.English)
	emb := embed.NewEmbed().
		SetTitle("Slot Assignments").
		SetColor(0x128af1).
		SetDescription(body).
		SetFooter(p.Sprintf("%d of %d assignments booked", booked, len(assignments)))
	respondEmbed(ctx, s, i, emb)
}
