// Package samples provides ready-made category pools for categorical
// columns, so callers don't have to hand-write value lists.
package samples

import (
	"github.com/go-faker/faker/v4"
)

var cityPool = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
	"Boston", "Nashville", "Detroit", "Portland", "Las Vegas",
	"London", "Paris", "Tokyo", "Berlin", "Madrid",
	"Rome", "Amsterdam", "Vienna", "Prague", "Barcelona",
	"Munich", "Milan", "Stockholm", "Copenhagen", "Oslo",
}

// Cities returns up to n distinct city names in a fixed order.
func Cities(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(cityPool) {
		n = len(cityPool)
	}
	return append([]string(nil), cityPool[:n]...)
}

// Names returns n distinct person names drawn from faker. The result
// varies between calls; pin the schema, not the pool, when determinism
// matters.
func Names(n int) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	// Cap attempts so faker collisions can't loop forever.
	for attempts := 0; len(out) < n && attempts < n*20; attempts++ {
		name := faker.Name()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Words returns n distinct lowercase words drawn from faker.
func Words(n int) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for attempts := 0; len(out) < n && attempts < n*20; attempts++ {
		w := faker.Word()
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
