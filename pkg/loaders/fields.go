package loaders

import (
	"github.com/sebostien/go-raytracer/pkg/core"
)

// fieldSet wraps the ordered fields of one object block. It reports
// duplicate keys when created, hands out fields by name, and reports
// any never-requested field as unknown when finished.
type fieldSet struct {
	b      *builder
	owner  Ident
	fields []Field
	byName map[string]Literal
	used   map[string]bool
}

func (b *builder) newFieldSet(owner Ident, fields []Field) *fieldSet {
	fs := &fieldSet{
		b:      b,
		owner:  owner,
		fields: fields,
		byName: make(map[string]Literal, len(fields)),
		used:   make(map[string]bool),
	}
	for _, f := range fields {
		if _, dup := fs.byName[f.Name.Name]; dup {
			b.errorf(f.Name.Span, "duplicate field '%s' in %s", f.Name.Name, owner.Name)
			continue
		}
		fs.byName[f.Name.Name] = f.Value
	}
	return fs
}

// get returns the named field's literal if present.
func (fs *fieldSet) get(name string) (Literal, bool) {
	fs.used[name] = true
	lit, ok := fs.byName[name]
	return lit, ok
}

// require returns the named field's literal, recording an error and
// returning nil when it is missing. The extractors treat a nil
// literal as already-reported and stay silent.
func (fs *fieldSet) require(name string) Literal {
	lit, ok := fs.get(name)
	if !ok {
		fs.b.errorf(fs.owner.Span, "missing field '%s' in %s", name, fs.owner.Name)
		return nil
	}
	return lit
}

// finish reports every field that was never requested as unknown.
func (fs *fieldSet) finish() {
	for _, f := range fs.fields {
		if !fs.used[f.Name.Name] {
			fs.b.errorf(f.Name.Span, "unknown field '%s' in %s", f.Name.Name, fs.owner.Name)
		}
	}
}

// numeric extracts a float64 from an Int or Float literal without
// reporting; the callers decide how to phrase the mismatch.
func numeric(lit Literal) (float64, bool) {
	switch v := lit.(type) {
	case *IntLit:
		return float64(v.Value), true
	case *FloatLit:
		return v.Value, true
	}
	return 0, false
}

// asFloat extracts a scalar number, accepting Int or Float literals.
func (b *builder) asFloat(lit Literal) (float64, bool) {
	if lit == nil {
		return 0, false
	}
	if f, ok := numeric(lit); ok {
		return f, true
	}
	b.errorf(lit.Span(), "expected a number, got %s", lit.TypeName())
	return 0, false
}

// asPositiveInt extracts an integer that must be strictly positive.
func (b *builder) asPositiveInt(lit Literal, what string) (int, bool) {
	if lit == nil {
		return 0, false
	}
	v, ok := lit.(*IntLit)
	if !ok {
		b.errorf(lit.Span(), "expected an integer for %s, got %s", what, lit.TypeName())
		return 0, false
	}
	if v.Value <= 0 {
		b.errorf(lit.Span(), "%s must be positive, got %d", what, v.Value)
		return 0, false
	}
	return int(v.Value), true
}

// asString extracts a string literal.
func (b *builder) asString(lit Literal) (string, bool) {
	if lit == nil {
		return "", false
	}
	if s, ok := lit.(*StringLit); ok {
		return s.Value, true
	}
	b.errorf(lit.Span(), "expected a string, got %s", lit.TypeName())
	return "", false
}

// asVec3 extracts a 3D point or vector from a 3-tuple of numbers.
func (b *builder) asVec3(lit Literal) (core.Vec3, bool) {
	if lit == nil {
		return core.Vec3{}, false
	}
	tuple, ok := lit.(*TupleLit)
	if !ok || len(tuple.Items) != 3 {
		b.errorf(lit.Span(), "expected a 3-tuple (x, y, z), got %s", lit.TypeName())
		return core.Vec3{}, false
	}

	var parts [3]float64
	allOK := true
	for i, item := range tuple.Items {
		f, ok := numeric(item)
		if !ok {
			b.errorf(item.Span(), "expected a number, got %s", item.TypeName())
			allOK = false
			continue
		}
		parts[i] = f
	}
	if !allOK {
		return core.Vec3{}, false
	}
	return core.NewVec3(parts[0], parts[1], parts[2]), true
}

// asColor extracts a color value: a 3-tuple of channels, a scalar
// broadcast across all channels, or a quoted color name.
func (b *builder) asColor(lit Literal) (core.Color, bool) {
	if lit == nil {
		return core.Color{}, false
	}

	switch v := lit.(type) {
	case *StringLit:
		c, ok := core.ColorByName(v.Value)
		if !ok {
			b.errorf(v.Span(), "unknown color name %q", v.Value)
			return core.Color{}, false
		}
		return c, true
	case *IntLit, *FloatLit:
		f, _ := numeric(lit)
		return core.NewColor(f, f, f), true
	case *TupleLit:
		if vec, ok := b.asVec3(lit); ok {
			return core.NewColor(vec.X, vec.Y, vec.Z), true
		}
		return core.Color{}, false
	}

	b.errorf(lit.Span(), "expected a color (3-tuple, number, or name), got %s", lit.TypeName())
	return core.Color{}, false
}
