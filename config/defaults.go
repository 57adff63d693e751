package config

import "github.com/spf13/viper"

func initDefaults() {
	// Discord
	viper.SetDefault("discord.token", "") // GitHub scrapers be like -.-
	viper.SetDefault("discord.server", "")
	// Google Sheets
	viper.SetDefault("sheets.id", "")
	viper.SetDefault("sheets.credentials", "credentials.json")
	viper.SetDefault("sheets.schedule_worksheet", "Schedule")
	viper.SetDefault("sheets.bookers_worksheet", "Booking Info")
	viper.SetDefault("sheets.timezone", "America/New_York")
	viper.SetDefault("sheets.ttl", "5m")
	// Assignment store
	viper.SetDefault("store.path", "data.json")
	// Reminder times, local wall clock
	viper.SetDefault("remind.nightly", "23:03")
	viper.SetDefault("remind.midnight", "00:00")
	viper.SetDefault("remind.morning", "09:00")
	// Occupancy API
	viper.SetDefault("api.port", 8080)
	// Prometheus exporter
	viper.SetDefault("prom.port", 2112)
}
