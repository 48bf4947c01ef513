// Package utils provides small value conversions shared by the input layers,
// mainly turning driver values into the strings a diff compares.
package utils
