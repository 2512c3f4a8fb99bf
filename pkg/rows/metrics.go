package rows

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	rowGetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edda_row_gets_total",
			Help: "Total number of single-row reads",
		},
		[]string{"status"},
	)

	cellWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edda_cell_writes_total",
			Help: "Total number of cell writes",
		},
		[]string{"status"},
	)

	rowsScannedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "edda_rows_scanned_total",
			Help: "Total number of rows produced by scans",
		},
	)

	cellsReadTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "edda_cells_read_total",
			Help: "Total number of cells read from the store",
		},
	)

	scanDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edda_scan_duration_seconds",
			Help:    "Scan duration from open to close in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}
