package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
)

const namespace = "warehouse"

type Metrics struct {
	commands  *prometheus.CounterVec
	shipments prometheus.Counter
	stock     *prometheus.GaugeVec
	records   *prometheus.GaugeVec
}

// New регистрирует метрики склада в reg (nil => prometheus.DefaultRegisterer).
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Warehouse commands by name and result.",
		}, []string{"command", "result"}),
		shipments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipments_total",
			Help:      "Finished products shipped.",
		}),
		stock: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stock_quantity",
			Help:      "Current stock quantity by material kind.",
		}, []string{"kind"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stock_records",
			Help:      "Material records by kind.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{m.commands, m.shipments, m.stock, m.records} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Command(name, result string) {
	m.commands.WithLabelValues(name, result).Inc()
}

func (m *Metrics) Shipped() { m.shipments.Inc() }

func (m *Metrics) Stock(totals []materials.KindTotal) {
	for _, t := range totals {
		m.stock.WithLabelValues(string(t.Kind)).Set(float64(t.Quantity))
		m.records.WithLabelValues(string(t.Kind)).Set(float64(t.Records))
	}
}
