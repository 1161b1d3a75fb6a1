package modules

import "glint/geom"

// RegisterBuiltins registers the value types shipped with the library.
// Hosts call it once at boot.
func RegisterBuiltins(r *Registry) error {
	return r.Register(Module{
		Name:    "vec2",
		Aliases: []string{"v2"},
		Doc:     "immutable 2D float64 vector",
		Arity:   2,
		Make: func(comps []float64) (any, error) {
			if len(comps) < 2 {
				return nil, geom.ErrShortSource
			}
			return geom.V(comps[0], comps[1]), nil
		},
	})
}
