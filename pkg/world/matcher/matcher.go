// Package matcher provides small predicates over block identities,
// used by the cave carver and decorators to test candidate blocks
// without hardcoding specific IDs into the carving/decoration logic
// itself.
package matcher

// Block reports whether a block identity matches some predicate. Any
// func(uint16) bool value satisfies it directly, so callers rarely need
// more than a closure; the constructors below cover the common cases.
type Block func(id uint16) bool

// All matches every block.
func All(uint16) bool { return true }

// None matches no block.
func None(uint16) bool { return false }

// Is matches exactly one block identity.
func Is(target uint16) Block {
	return func(id uint16) bool { return id == target }
}

// IsNot matches every block identity except one.
func IsNot(target uint16) Block {
	return func(id uint16) bool { return id != target }
}

// AnyOf matches any of the given block identities.
func AnyOf(targets ...uint16) Block {
	return func(id uint16) bool {
		for _, t := range targets {
			if id == t {
				return true
			}
		}
		return false
	}
}
