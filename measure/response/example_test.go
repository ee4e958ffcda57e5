package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-filter/fir"
	"github.com/cwbudde/algo-filter/measure/response"
)

func ExampleMagnitudeDB() {
	// Length-4 moving average: unity gain at DC.
	f, err := fir.New([]float64{0.25, 0.25, 0.25, 0.25})
	if err != nil {
		panic(err)
	}

	fcs := []float64{0, 0.125}
	for i, db := range response.MagnitudeDB(f, fcs) {
		fmt.Printf("%.3f -> %.2f dB\n", fcs[i], db)
	}
	// Output:
	// 0.000 -> 0.00 dB
	// 0.125 -> -3.70 dB
}

func ExampleGrid() {
	for _, fc := range response.Grid(5, 0, 0.5) {
		fmt.Printf("%.3f\n", fc)
	}
	// Output:
	// 0.000
	// 0.125
	// 0.250
	// 0.375
	// 0.500
}
