package dshl

// A Scope represents a scope in the shell, holding variables and commands.
// Scopes can be stacked, in a reverse linked list structure, and shadow each other.
type Scope struct {
	Parent *Scope // Parent scope.
	Modal  bool   // A modal scope can be exitted with Ctrl+D.
	PS1    PS1    // PS1 associated with this scope; can be shadowed.

	vars map[string]interface{}
}

// Returns a child scope, with this scope set as its parent.
func (s *Scope) Child() *Scope {
	return &Scope{Parent: s}
}

// Set the given name to a value. Shadows lower scopes.
func (s *Scope) Set(name string, v interface{}) {
	if s.vars == nil {
		s.vars = map[string]interface{}{name: v}
	} else {
		s.vars[name] = v
	}
}

// Sets a name to a value, attempting first to overwrite an existing instance of it, then resorting
// to creating it in the current scope.
func (s *Scope) Assign(name string, v interface{}) {
	_, vs := s.lookup(name)
	if vs == nil {
		vs = s
	}
	vs.Set(name, v)
}

// Looks up the given name in this state or any higher ones.
// Returns an untyped (interface{}) nil if nothing is found.
func (s *Scope) Get(name string) interface{} {
	v, _ := s.lookup(name)
	return v
}

// Deletes the given name. It can be in this scope or in a lower one.
func (s *Scope) Delete(name string) {
	_, vs := s.lookup(name)
	if vs != nil {
		delete(vs.vars, name)
	}
}

// Returns a map of all members visible in this scope and any parent scopes.
func (s *Scope) All() map[string]interface{} {
	out := make(map[string]interface{})
	for scope := s; scope != nil; scope = scope.Parent {
		for k, v := range scope.vars {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}

// Returns the prompt for this scope, falling back to parent scopes and then DefaultPS1.
func (s *Scope) Prompt(lasterr error) string {
	for scope := s; scope != nil; scope = scope.Parent {
		if scope.PS1 != nil {
			return scope.PS1(lasterr)
		}
	}
	return DefaultPS1(lasterr)
}

// Returns the innermost modal scope, if any.
func (s *Scope) modal() *Scope {
	for scope := s; scope != nil; scope = scope.Parent {
		if scope.Modal {
			return scope
		}
	}
	return nil
}

// Look up a name and the scope it's in. The scope is nil if the name is not found.
func (s *Scope) lookup(name string) (interface{}, *Scope) {
	if v, ok := s.vars[name]; ok {
		return v, s
	}
	if s.Parent != nil {
		return s.Parent.lookup(name)
	}
	return nil, nil
}
