// Command splinectl fits a cubic spline to a dataset and reports on it.
//
// Usage:
//
//	splinectl -data FILE [flags]
//
// Flags:
//
//	-data FILE        samples as .yaml/.yml, .toml or .dat/.txt/.tsv columns
//	-boundary NAME    natural (default) or clamped
//	-slopes a,b       end slopes for a clamped boundary
//	-samples N        grid size for the sampling summary (default 500)
//	-eval x1,x2,...   points to evaluate
//	-order 0|1|2      value, first or second derivative for -eval
//	-integrate        exact integral over the domain next to a Romberg estimate
//	-compare          leave-one-out comparison with Lagrange and Newton
//	-level y          abscissae where S(x) = y
//
// Defaults come from LVNUM_* environment variables (see internal/config);
// a boundary in the dataset file beats the environment, and an explicit
// flag beats both. Logs go to stderr, the report to stdout.
package main
