// Package common holds the building blocks shared by the project rule families:
// the detail text layout used in reports and small status helpers.
package common
