package record

// Schema is the ordered list of attribute names declared by a dataset.
type Schema []string

// Has reports whether the schema declares the attribute.
func (s Schema) Has(name string) bool {
	return s.Index(name) >= 0
}

// Index returns the position of the attribute or -1.
func (s Schema) Index(name string) int {
	for i, n := range s {
		if n == name {
			return i
		}
	}
	return -1
}

// Missing returns the names not declared by the schema, in argument order.
func (s Schema) Missing(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !s.Has(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Available returns the names declared by the schema, in argument order.
func (s Schema) Available(names ...string) []string {
	var out []string
	for _, n := range names {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// First returns the first of names declared by the schema.
func (s Schema) First(names ...string) (string, bool) {
	for _, n := range names {
		if s.Has(n) {
			return n, true
		}
	}
	return "", false
}
