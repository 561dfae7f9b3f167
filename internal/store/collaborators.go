package store

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// IDGenerator issues record identities. Prefix tags the collection.
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator issues "<prefix>-<uuid v4>" identities
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Pricer computes the total amount of a new medicine order
type Pricer interface {
	Price(items []string) float64
}

// RandomPricer draws a placeholder whole-rupee amount in [Min, Min+Spread)
type RandomPricer struct {
	Min    int
	Spread int
}

// DefaultPricer matches the demo amounts shown on the pharmacy dashboard
var DefaultPricer = RandomPricer{Min: 150, Spread: 1000}

func (p RandomPricer) Price(_ []string) float64 {
	if p.Spread <= 0 {
		return float64(p.Min)
	}
	return float64(rand.IntN(p.Spread) + p.Min)
}

// PricerFunc adapts a function to Pricer
type PricerFunc func(items []string) float64

func (f PricerFunc) Price(items []string) float64 { return f(items) }

// AddressResolver picks the delivery address of a new medicine order
type AddressResolver interface {
	Resolve(patientName string) string
}

// StaticAddress delivers every order to the same address
type StaticAddress string

const DefaultDeliveryAddress StaticAddress = "12 Palm Grove, Mumbai"

func (a StaticAddress) Resolve(_ string) string { return string(a) }
