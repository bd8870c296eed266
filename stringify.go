package tabwalk

// Stringify renders v in the compact debug form: contiguous positional slots
// print bare, every other entry prints as key=value, keys ordered positional
// first then by text. The result is for humans; use Pickle for output that
// must evaluate back.
func Stringify(v any) string {
	return Render(v, Hooks{
		Pair: func(_, prevKey, _, key, _ any, keyText, valText string) string {
			if i, ok := keyIndex(key); ok {
				if i == 1 {
					return valText
				}
				if pi, pok := keyIndex(prevKey); pok && i == pi+1 {
					return valText
				}
			}
			return keyText + "=" + valText
		},
		Sort: sortKeys,
	})
}
