package tabwalk

import "strconv"

// Mnemonic derives a stable fingerprint from a heterogeneous positional
// argument list, suitable as a cache or identity key. Every value's text form
// is quoted, numbers included, so type differences stay visible in the
// output, and keys sort positional-first; structurally equal argument lists
// produce byte-equal fingerprints regardless of value identity.
func Mnemonic(args ...any) string {
	return Render(FromSlice(args), Hooks{
		Elem: func(x any) string { return strconv.Quote(defaultElem(x)) },
		Sort: sortKeys,
	})
}
