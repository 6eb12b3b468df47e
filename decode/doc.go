// Package decode turns camelCased JSON objects returned by the Rated API into
// typed records.
//
// Decoding happens in two steps:
//
//   - Decamelize rewrites the top-level keys of an object from lowerCamelCase
//     to snake_case. Nested objects and arrays are left untouched, so opaque
//     blobs such as operator tags keep their wire keys.
//   - Record fills a record struct from the converted mapping, following the
//     schema declared by the struct's `rated` tags.
//
// # Declaring a record
//
// Every decoded field carries a `rated` tag naming its snake_case key.
// Required fields add the "required" option and use a plain value type.
// Optional fields use a pointer, slice, map or interface type, so that an
// absent field (nil) never collides with a valid zero value:
//
//	type ValidatorAPR struct {
//		ValidatorIndex int64    `rated:"validator_index,required"`
//		Percentage     float64  `rated:"percentage,required"`
//		ActiveStake    *float64 `rated:"active_stake"`
//	}
//
// A required field that is missing or null, or an object that shares no key
// with the record at all, fails with a *ShapeMismatchError. Unknown keys are
// ignored. Timestamps are kept as the strings the API sends.
package decode
