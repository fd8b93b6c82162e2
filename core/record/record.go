package record

// Record is one row of a dataset.
type Record struct {
	// Row is the spreadsheet row locus of the record.
	Row    int
	values map[string]Value
}

// Get returns the value of the attribute, or an absent value.
func (r Record) Get(name string) Value {
	if v, ok := r.values[name]; ok {
		return v
	}
	return Absent()
}

// Has reports whether the record carries the attribute.
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Len returns the number of attributes carried by the record.
func (r Record) Len() int {
	return len(r.values)
}
