package keymap

// Resolver maps key strings to actions per binding context.
type Resolver struct {
	byContext map[string]map[string]Action // context -> key -> action
}

// NewResolver creates a resolver from bindings. Within a context the last
// binding of a key wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byContext: make(map[string]map[string]Action)}
	for _, b := range bindings {
		keys := r.byContext[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.byContext[b.Context] = keys
		}
		for _, key := range b.Keys {
			keys[key] = b.Action
		}
	}
	return r
}

// ResolveIn returns the action bound to key in context, falling back to
// ContextGlobal. Returns empty string if bound in neither.
func (r *Resolver) ResolveIn(context, key string) Action {
	if a, ok := r.byContext[context][key]; ok {
		return a
	}
	return r.byContext[ContextGlobal][key]
}

// IsGlobal reports whether key resolves through the global fallback in
// context rather than a binding of its own.
func (r *Resolver) IsGlobal(context, key string) bool {
	if _, ok := r.byContext[context][key]; ok {
		return context == ContextGlobal
	}
	_, ok := r.byContext[ContextGlobal][key]
	return ok
}
