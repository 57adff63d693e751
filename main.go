package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	"github.com/spf13/viper"

	"github.com/studysoc/discord-bot/api"
	"github.com/studysoc/discord-bot/commands"
	"github.com/studysoc/discord-bot/config"
	"github.com/studysoc/discord-bot/prometheus"
	"github.com/studysoc/discord-bot/reminders"
	"github.com/studysoc/discord-bot/sheets"
	"github.com/studysoc/discord-bot/status"
	"github.com/studysoc/discord-bot/store"
)

var production *bool

func main() {
	// Check for flags
	production = flag.Bool("p", false, "enables production with json logging")
	flag.Parse()
	if *production {
		log.InitJSONLogger(&log.Config{Output: os.Stdout})
	} else {
		log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	}

	// Setup viper
	exitError(config.InitConfig())

	// Google Sheets source behind the TTL cache
	source, err := sheets.NewSheetSource(context.Background())
	exitError(err)
	manager := sheets.NewManager(source, viper.GetDuration("sheets.ttl"))

	// JSON-file assignment store
	assignments := store.New(viper.GetString("store.path"))

	// Discord connection
	token := viper.GetString("discord.token")
	session, err := discordgo.New("Bot " + token)
	exitError(err)
	session.Identify.Intents = discordgo.IntentsAllWithoutPrivileged
	// Open websocket
	err = session.Open()
	exitError(err)
	exitError(commands.Register(session, manager, assignments))

	// Run the occupancy API and metrics exporter on their own goroutines
	go api.Run(manager)
	go prometheus.CreateExporter()

	// Daily reminder DMs on the sheet's wall clock
	scheduler := gocron.NewScheduler(config.Timezone())
	reminders.Schedule(scheduler, session, assignments)
	scheduler.StartAsync()

	// Update the bot status periodically
	go status.Status(session, manager)

	// Maintain connection until a SIGTERM, then cleanly exit
	log.Info("Bot is Running")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc
	log.Info("Cleanly exiting")
	session.Close()
}

func exitError(err error) {
	if err != nil {
		log.WithError(err).Error("Failed to start bot")
		os.Exit(1)
	}
}
