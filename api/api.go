package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Strum355/log"
	"github.com/spf13/viper"

	"github.com/studysoc/discord-bot/config"
	"github.com/studysoc/discord-bot/schedule"
	"github.com/studysoc/discord-bot/sheets"
)

type occupancyResponse struct {
	Slot        string `json:"slot"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Booked      bool   `json:"booked"`
	BookedUntil string `json:"booked_until,omitempty"`
	BookedSlots int    `json:"booked_slots"`
	TotalSlots  int    `json:"total_slots"`
}

type bookerResponse struct {
	Time     string `json:"time"`
	Name     string `json:"name"`
	Assigned bool   `json:"assigned"`
}

var manager *sheets.Manager

// Run serves the read-only occupancy API. Blocks, so run it on its own
// goroutine.
func Run(m *sheets.Manager) {
	manager = m

	mux := http.NewServeMux()
	mux.HandleFunc("/occupancy", getOccupancy)
	mux.HandleFunc("/bookers", getBookers)
	err := http.ListenAndServe(fmt.Sprintf(":%d", viper.GetInt("api.port")), mux)
	if err != nil {
		log.WithError(err).Error("Occupancy API failed")
	}
}

func getOccupancy(w http.ResponseWriter, r *http.Request) {
	sched, err := manager.Schedule(r.Context())
	if err != nil {
		log.WithError(err).Error("Error querying schedule for api")
		http.Error(w, "schedule unavailable", http.StatusServiceUnavailable)
		return
	}

	now := time.Now().In(config.Timezone())
	status := schedule.ResolveCurrent(now, sched)
	booked, total := sched.BookedCount(schedule.DateLabel(now))
	response := occupancyResponse{
		Slot:        schedule.TimeLabel(status.Slot),
		Date:        schedule.DateLabel(status.Slot),
		Status:      status.Value,
		Booked:      status.Booked,
		BookedSlots: booked,
		TotalSlots:  total,
	}
	if status.Booked {
		response.BookedUntil = fmt.Sprintf(
			"%s %s",
			schedule.TimeLabel(status.BookedUntil),
			schedule.DateLabel(status.BookedUntil),
		)
	}
	writeJSON(w, response)
}

func getBookers(w http.ResponseWriter, r *http.Request) {
	bookers, err := manager.Bookers(r.Context())
	if err != nil {
		log.WithError(err).Error("Error querying bookers for api")
		http.Error(w, "bookers unavailable", http.StatusServiceUnavailable)
		return
	}

	response := make([]bookerResponse, 0, len(bookers))
	for _, booker := range bookers {
		response = append(response, bookerResponse{
			Time:     booker.Time,
			Name:     booker.Name,
			Assigned: booker.Assigned(),
		})
	}
	writeJSON(w, response)
}

func writeJSON(w http.ResponseWriter, value interface{}) {
	w.Header().Set("content-type", "application/json")
	b, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Error("Error marshalling api response")
		return
	}
	w.Write(b)
}
