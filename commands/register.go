package commands

import (
	"context"
	"fmt"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"github.com/studysoc/discord-bot/prometheus"
	"github.com/studysoc/discord-bot/sheets"
	"github.com/studysoc/discord-bot/store"
)

var (
	commandsMap = make(map[string]commandFunc)

	sheetsManager *sheets.Manager
	slots         *store.Store
)

type commandFunc func(context.Context, *discordgo.Session, *discordgo.InteractionCreate)

func command(name string, function commandFunc) {
	commandsMap[name] = function
}

var slashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "assignslot",
		Description: "Assign a study-room slot to a user",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who gets the slot",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Slot time label as it appears on the sheet, e.g. 8:30 am",
				Required:    true,
			},
		},
	},
	{
		Name:        "markbooked",
		Description: "Mark a user's assigned slot as booked on the sheet",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose slot to mark booked",
				Required:    true,
			},
		},
	},
	{
		Name:        "showassignments",
		Description: "List every assigned slot and its booking status",
	},
	{
		Name:        "bookers",
		Description: "Show who is responsible for booking each slot",
	},
	{
		Name:        "bookings",
		Description: "Show whether the room is booked right now, and until when",
	},
}

// Register wires the command handlers and overwrites the guild's slash
// commands. The session must already be open so the application ID is known.
func Register(s *discordgo.Session, manager *sheets.Manager, assignments *store.Store) error {
	sheetsManager = manager
	slots = assignments

	command("assignslot", assignSlot)
	command("markbooked", markBooked)
	command("showassignments", showAssignments)
	command("bookers", bookersCommand)
	command("bookings", bookingsCommand)

	// Setup Interaction Handlers
	s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		callCommand(s, i)
	})

	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, viper.GetString("discord.server"), slashCommands)
	if err != nil {
		return fmt.Errorf("registering slash commands: %w", err)
	}
	return nil
}

// Returns useful data about the command's contents
func extractCommandContent(i *discordgo.InteractionCreate) (commandAuthor *discordgo.User, commandName string, commandBody []string) {
	commandAuthor = i.User
	if i.Member != nil {
		commandAuthor = i.Member.User
	}
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		commandName = i.ApplicationCommandData().Name
		for _, option := range i.ApplicationCommandData().Options {
			commandBody = append(commandBody, fmt.Sprintf("%s : %v", option.Name, option.Value))
		}
	case discordgo.InteractionMessageComponent:
		commandName = i.MessageComponentData().CustomID
		for idx, value := range i.MessageComponentData().Values {
			commandBody = append(commandBody, fmt.Sprintf("value %d : %s", idx, value))
		}
	}
	return
}

func callCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	commandAuthor, commandName, commandBody := extractCommandContent(i)
	if command, ok := commandsMap[commandName]; ok {
		ctx := context.WithValue(context.Background(), log.Key, log.Fields{
			"author_id":  commandAuthor.ID,
			"channel_id": i.ChannelID,
			"guild_id":   i.GuildID,
			"user":       commandAuthor.Username,
			"command":    commandName,
			"body":       commandBody,
		})

		log.WithContext(ctx).Info("invoking standard command")
		prometheus.CommandInvoked(commandName)
		command(ctx, s, i)
	}
}
