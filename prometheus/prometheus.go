package prometheus

import (
	"fmt"
	"net/http"

	"github.com/Strum355/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

var (
	commandInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "command_invocations_total",
		Help: "The number of slash command invocations, by command",
	},
		[]string{
			"command",
		})
	sheetFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sheet_fetches_total",
		Help: "The number of remote sheet fetches, by dataset and result",
	},
		[]string{
			"dataset",
			"result",
		})
	reminderDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reminder_deliveries_total",
		Help: "The number of reminder DMs attempted, by result",
	},
		[]string{
			"result",
		})
)

// CommandInvoked is called every time a slash command is dispatched.
func CommandInvoked(name string) {
	commandInvocations.WithLabelValues(name).Inc()
}

// SheetFetch is called after every remote fetch attempt on a dataset.
func SheetFetch(dataset string, err error) {
	sheetFetches.WithLabelValues(dataset, result(err)).Inc()
}

// ReminderDelivery is called after every reminder DM attempt.
func ReminderDelivery(err error) {
	reminderDeliveries.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// CreateExporter starts the prometheus exporter http server. Blocks, so run
// it on its own goroutine.
func CreateExporter() {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", viper.GetInt("prom.port")), nil)
	if err != nil {
		log.WithError(err).Error("Prometheus exporter failed")
	}
}
