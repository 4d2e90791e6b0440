// Package portafolio is the financial calculation engine behind a personal
// portfolio dashboard: it normalizes the uploaded investment table, derives
// the aggregate metrics (capital, passive income, weighted rates,
// diversification), and runs the projections the screens are built on, from
// goal horizons and the independence number to inflation scenarios, loan
// amortization plans and the portfolio risk score.
//
// The package is deliberately synchronous and file-backed: every persisted
// record set is a small JSON sidecar file read in full, mutated in memory
// and written back in full. The correctness burden lives in the numeric
// formulas, not in coordination.
package portafolio
