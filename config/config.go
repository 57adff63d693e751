package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Strum355/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads a local .env if present and sets up viper with env
// overrides for every default.
func InitConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on the environment")
	}
	initDefaults()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	printAll()
	return nil
}

// Timezone returns the location the sheet's labels are written in, falling
// back to the process's local zone when the configured name is bad.
func Timezone() *time.Location {
	loc, err := time.LoadLocation(viper.GetString("sheets.timezone"))
	if err != nil {
		log.WithError(err).Error("Bad sheets.timezone, falling back to local time")
		return time.Local
	}
	return loc
}

func printAll() {
	fmt.Println("Startup variables:")
	for k, v := range viper.AllSettings() {
		fmt.Println(k + ":")
		for sk, sv := range v.(map[string]interface{}) {
			if strval, ok := sv.(string); ok {
				if len(strval) > 5 {
					fmt.Printf("%s: %s...\n", sk, strval[:5])
				} else {
					fmt.Printf("%s: %s\n", sk, strval)
				}
			} else {
				fmt.Printf("%s: %v\n", sk, sv)
			}
		}
	}
}
