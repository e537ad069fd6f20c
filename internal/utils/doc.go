// Package utils provides general-purpose helper utilities
// used across different parts of the application: identifier generation,
// a wall clock that tests can replace, and HTTP client initialization.
package utils
