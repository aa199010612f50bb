package model

import "fmt"

// Match dispatches on the concrete field variant. It panics on a type outside
// the sealed set.
func Match[T any](field Field, dropdown func(Dropdown) T, text func(Text) T, checkbox func(Checkbox) T) T {
	switch f := field.(type) {
	case Dropdown:
		return dropdown(f)
	case *Dropdown:
		return dropdown(*f)
	case Text:
		return text(f)
	case *Text:
		return text(*f)
	case Checkbox:
		return checkbox(f)
	case *Checkbox:
		return checkbox(*f)
	default:
		panic(fmt.Sprintf("model: unsupported field variant %T", field))
	}
}
