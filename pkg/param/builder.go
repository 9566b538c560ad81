package param

// Builder provides a fluent API for declaring a parameter, in the same
// spirit as the host-facing layout builders: each call returns the
// builder so a declaration reads as one expression.
type Builder struct {
	d Declaration
}

// Float starts a Continuous (floating point) parameter declaration.
func Float(id, name string) *Builder {
	return &Builder{d: Declaration{
		Kind:  Continuous,
		ID:    id,
		Name:  name,
		Flags: DefaultFlags,
		Range: Range{Min: 0, Max: 1},
	}}
}

// Int starts an Integer parameter declaration.
func Int(id, name string) *Builder {
	return &Builder{d: Declaration{
		Kind:  Integer,
		ID:    id,
		Name:  name,
		Flags: DefaultFlags,
	}}
}

// Bool starts a Boolean parameter declaration.
func Bool(id, name string) *Builder {
	return &Builder{d: Declaration{
		Kind:  Boolean,
		ID:    id,
		Name:  name,
		Flags: DefaultFlags,
	}}
}

// ChoiceOf starts a Choice parameter declaration with an ordered,
// non-empty label list.
func ChoiceOf(id, name string, labels ...string) *Builder {
	return &Builder{d: Declaration{
		Kind:   Choice,
		ID:     id,
		Name:   name,
		Flags:  DefaultFlags,
		Labels: labels,
	}}
}

// Range sets a linear range for a Continuous or Integer parameter.
func (b *Builder) Range(min, max float64) *Builder {
	b.d.Range = Range{Min: min, Max: max}
	return b
}

// LogRange sets a logarithmic range; min must be strictly positive.
func (b *Builder) LogRange(min, max float64) *Builder {
	b.d.Range = Range{Min: min, Max: max, Log: true}
	return b
}

// Default sets the plain default value for Continuous/Integer parameters.
func (b *Builder) Default(plain float64) *Builder {
	b.d.DefaultPlain = plain
	return b
}

// DefaultOn sets the default for a Boolean parameter.
func (b *Builder) DefaultOn(on bool) *Builder {
	b.d.DefaultBool = on
	return b
}

// DefaultIndex sets the default selection for a Choice parameter.
func (b *Builder) DefaultIndex(idx int) *Builder {
	b.d.DefaultIndex = idx
	return b
}

// Unit sets the unit label shown alongside a formatted value (e.g. "dB").
func (b *Builder) Unit(unit string) *Builder {
	b.d.Unit = unit
	return b
}

// Smoothing sets the smoothing style applied to a Continuous parameter.
func (b *Builder) Smoothing(style Style) *Builder {
	b.d.Smoothing = style
	return b
}

// WithFlags replaces the parameter's flags entirely.
func (b *Builder) WithFlags(flags Flags) *Builder {
	b.d.Flags = flags
	return b
}

// Modulatable sets the Modulatable flag.
func (b *Builder) Modulatable() *Builder {
	b.d.Flags |= Modulatable
	return b
}

// Hidden sets the Hidden flag.
func (b *Builder) Hidden() *Builder {
	b.d.Flags |= Hidden
	return b
}

// Stepped sets the Stepped flag.
func (b *Builder) Stepped() *Builder {
	b.d.Flags |= Stepped
	return b
}

// NotAutomatable clears the Automatable flag.
func (b *Builder) NotAutomatable() *Builder {
	b.d.Flags &^= Automatable
	return b
}

// Build finalizes the declaration.
func (b *Builder) Build() Declaration {
	return b.d
}
