package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
)

// Log gathers g and writes every counter and histogram as a single
// info-level event. Labeled series are keyed name{label=value}.
func Log(g prometheus.Gatherer, logger zerolog.Logger) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	event := logger.Info()
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			key := seriesKey(mf.GetName(), m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				event = event.Float64(key, m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				event = event.
					Uint64(key+"_count", h.GetSampleCount()).
					Float64(key+"_sum", h.GetSampleSum())
			}
		}
	}
	event.Msg("sweep metrics")
	return nil
}

func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	key := name + "{"
	for i, l := range labels {
		if i > 0 {
			key += ","
		}
		key += l.GetName() + "=" + l.GetValue()
	}
	return key + "}"
}
