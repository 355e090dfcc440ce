// Package metrics は画像生成の結果を Prometheus に記録します。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeSuccess は成功時の outcome ラベル値です。失敗時はエラー種別をそのまま使います。
const OutcomeSuccess = "success"

// Recorder は生成回数と所要時間を記録します。
type Recorder struct {
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewRecorder はメトリクスを reg に登録して Recorder を返します。
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tattoo_generations_total",
			Help: "Number of image generation requests by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tattoo_generation_duration_seconds",
			Help:    "Time spent generating one image, including the service call.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}),
	}
}

// Observe は 1 回分の結果を記録します。
func (r *Recorder) Observe(outcome string, elapsed time.Duration) {
	r.generations.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
}
