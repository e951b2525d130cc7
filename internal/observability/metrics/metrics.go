package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the public booking flow.
type BookingMetrics struct {
	bookingsTotal     *prometheus.CounterVec
	availabilityTotal prometheus.Counter
	openSlots         prometheus.Histogram
	messagesTotal     *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "completions_total",
			Help:      "Total booking completion attempts",
		}, []string{"outcome"}),
		availabilityTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "availability_requests_total",
			Help:      "Total availability queries",
		}),
		openSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "open_slots",
			Help:      "Open slots returned per availability query",
			Buckets:   []float64{0, 1, 2, 3, 5, 7, 9},
		}),
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "messaging",
			Name:      "generated_total",
			Help:      "Total generated patient messages",
		}, []string{"kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.availabilityTotal, m.openSlots, m.messagesTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveAvailability(openSlots int) {
	if m == nil {
		return
	}
	m.availabilityTotal.Inc()
	m.openSlots.Observe(float64(openSlots))
}

func (m *BookingMetrics) ObserveMessage(kind string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(kind).Inc()
}
