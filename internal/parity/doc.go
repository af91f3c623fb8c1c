// Package parity compares localized string tables against a baseline table.
//
// A run loads the baseline once, then checks each locale in name order:
// missing file, missing keys, extra keys, and finally placeholder multisets
// for every shared key. Discrepancies accumulate into one Report; only a
// missing baseline or a malformed resource file aborts the run.
package parity
