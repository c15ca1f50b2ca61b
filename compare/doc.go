// Package compare ranks interpolation methods on a dataset by leave-one-out
// cross-validation.
//
// For every sample i the remaining n-1 samples fit each method, the fitted
// curve predicts x_i, and |y_i - ŷ_i| is recorded. The method with the lowest
// mean absolute error (MAE) wins; ties go to the earlier method in Methods.
//
// Endpoints are predicted by extrapolation, which punishes high-degree
// polynomials on wide, equally spaced grids (Runge's phenomenon).
package compare
