// Package charset defines the canonical table of character classes used
// for both password entropy estimation and password generation.
//
// The table is a single immutable registry so that the two sides always
// agree on alphabet contents and sizes. A password generated to meet an
// entropy target therefore reports at least that entropy when estimated
// against the same class.
package charset
