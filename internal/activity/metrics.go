package activity

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	computed *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		computed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fittrack",
			Subsystem: "workouts",
			Name:      "computed_total",
			Help:      "Workouts summarised, by training type.",
		}, []string{"training_type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fittrack",
			Subsystem: "workouts",
			Name:      "rejected_total",
			Help:      "Sensor packages that could not be summarised, by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.computed, m.rejected)
	return m
}

func (m *Metrics) observeComputed(trainingType string) {
	if m == nil {
		return
	}
	m.computed.WithLabelValues(trainingType).Inc()
}

func (m *Metrics) observeRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
