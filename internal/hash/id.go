// Package hash computes the stable 64-bit digest used to key the type-name
// lookup registries in extobj and schema.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
