// Package metrics регистрирует счётчики prometheus для операций хранилища
// и уведомлений нотификатора. Отдаются стандартным promhttp-хендлером на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMutations считает мутации хранилища по типу операции.
var StoreMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "subkeeper_store_mutations_total",
	Help: "Number of subscription store mutations by operation.",
}, []string{"operation"})

// AlertsEmitted считает уведомления нотификатора по уровню важности.
var AlertsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "subkeeper_alerts_emitted_total",
	Help: "Number of renewal alerts emitted by severity.",
}, []string{"severity"})

// NotifierRuns считает проходы нотификатора по причине запуска.
var NotifierRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "subkeeper_notifier_runs_total",
	Help: "Number of notifier evaluation passes by trigger.",
}, []string{"trigger"})
