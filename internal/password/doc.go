// Package password generates character-based and dictionary-word-based
// passwords, optionally sized to satisfy a minimum entropy target.
//
// Generation shares the charset registry with the entropy estimator, so
// a password sized for a target reports at least that entropy when
// estimated under the same hypothesis. Repeated calls with identical
// parameters do not reproduce the same output; unpredictability is a
// design requirement.
package password
