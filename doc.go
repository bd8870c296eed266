package tabwalk

// Package tabwalk provides:
//
// - A cycle-safe structural renderer over nested associative containers,
//   parameterized by pluggable format Hooks (Render/Stringify/Pickle/Mnemonic)
// - Length resolution under two definitions (contiguous run vs highest index)
//   and the sequence iterators derived from it (IPairs/NPairs/RIPairs/RNPairs)
// - A round-trip literal form: Pickle emits text that Unpickle evaluates back
//   to a deep-equal value
// - A numeric-aware token Comparator for deterministic key ordering and
//   dotted-identifier comparison
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place codecs under codec/, the cty bridge under ctyadapt/, and the CLI under cmd/tabwalk.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  t := tabwalk.NewTable()
//  t.Set("version", "1.2.0")
//  s := tabwalk.Stringify(t)
//
//  text, err := tabwalk.Pickle(t)
//  v, err := tabwalk.Unpickle(text)
//
