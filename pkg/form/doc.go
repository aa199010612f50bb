// Package form maps catalog entries onto renderable field descriptors and
// dispatches value changes into the engine. A Controller owns the catalog and
// talks to a Surface (HTML snapshot, terminal prompts, tests); each selected
// entry gets a Session that recomputes the output after every change.
package form
