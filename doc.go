// Package acb computes the Adjusted Cost Base (ACB) of a security and the
// capital gains realized on its sales, following the Canadian rules.
//
// The computation runs in three steps:
//   - Classify turns ledger entries into the buys and sells of one security,
//     using the account prefixes of a SecurityConfig.
//   - Compute folds those transactions, in date order, into a Result per
//     transaction: the weighted average cost base, the capital gain of each
//     sale and whether its loss is superficial.
//   - Summarize groups the realized gains per period, usually per tax year.
//
// Every amount is converted to the reporting currency with the rates of the
// ledger. When a rate is missing on the day of a transaction, the nearest one
// is used and the Converter records it in its Diagnostics.
//
// This package serves as the logic of the `acb` command-line tool.
package acb
