package experiment

import (
	"fmt"
	"strings"
)

// FormatResult renders a human-readable summary of one run: the operator
// pair, the best assignment's scores and the crop planted on each field.
// Crop ids are labeled with cropNames when one is provided per crop;
// otherwise the numeric ids are printed.
func FormatResult(r *Result, cropNames []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n", r.Label)
	fmt.Fprintf(&b, "  yield = %.2f, cost = %.2f, fitness = %.3f\n",
		r.Best.TotalYield(), r.Best.TotalCost(), r.Best.Fitness())

	labels := make([]string, 0, r.Best.Problem().FieldCount())
	for _, crop := range r.Best.Genome() {
		if crop < len(cropNames) {
			labels = append(labels, cropNames[crop])
		} else {
			labels = append(labels, fmt.Sprintf("%d", crop))
		}
	}
	fmt.Fprintf(&b, "  assignment: [%s]\n", strings.Join(labels, " "))

	return b.String()
}
