package utils

// Generator produces unique identifiers for new records.
type Generator interface {
	Generate() string
}
