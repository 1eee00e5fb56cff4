package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	InteractionsAccepted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_interactions_accepted_total",
			Help: "Total number of rewarded ad interactions",
		},
		[]string{"type"},
	)

	InteractionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_interactions_rejected_total",
			Help: "Total number of rejected ad interactions",
		},
		[]string{"reason"},
	)

	RewardUnitsCredited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_reward_units_credited_total",
			Help: "Sum of wallet credits paid out, in minor units",
		},
	)
)

func init() {
	prometheus.MustRegister(InteractionsAccepted)
	prometheus.MustRegister(InteractionsRejected)
	prometheus.MustRegister(RewardUnitsCredited)
}
