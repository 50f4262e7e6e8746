// Package phonetic generates fuzzy phonetic and romanized variants of food
// terms so that index keys and queries match across spelling, script,
// dialect and typing differences.
//
// Every Encoder is total: Encode never panics and always returns at least
// the lower-cased input, with duplicates removed and insertion order kept.
package phonetic
