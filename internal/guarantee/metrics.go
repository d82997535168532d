package guarantee

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/feral-file/ff-guarantees/internal/domain"
)

var lifecycleOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ff_guarantees_lifecycle_operations_total",
		Help: "Warranty lifecycle operations by outcome",
	},
	[]string{"operation", "outcome"},
)

// observe counts one lifecycle operation. Expected rejections are counted apart from failures.
func observe(operation string, err error) {
	lifecycleOperations.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case domain.IsValidation(err):
		return "invalid"
	case domain.IsNotFound(err):
		return "not_found"
	case domain.IsConflict(err), domain.IsIntegrity(err):
		return "conflict"
	default:
		return "error"
	}
}
