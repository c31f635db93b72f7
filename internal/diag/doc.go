// Package diag holds the diagnostic model shared by every front-end phase:
// severities, stable codes, the Diagnostic value, the capped Bag collector,
// and the Reporter contract phases emit through.
package diag
