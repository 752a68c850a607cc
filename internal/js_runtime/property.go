// Package js_runtime holds the small pieces of ECMAScript semantics that
// sit just past the syntax boundary: right now, the property descriptor
// record used to describe object property attributes.
package js_runtime

import "github.com/1ntEgr8/ecmafront/internal/js_ast"

// PropertyDescriptor is a JavaScript Property Descriptor record
// (https://tc39.es/ecma262/#sec-property-descriptor-specification-type).
// Every attribute is independently present or absent: a nil Configurable
// means "not specified", not "false". A data descriptor carries Value
// and/or Writable; an accessor descriptor carries Get and/or Set; a
// descriptor must never be both.
type PropertyDescriptor struct {
	Configurable *bool
	Enumerable   *bool
	Writable     *bool
	Value        *js_ast.Expr
	Get          *js_ast.Expr
	Set          *js_ast.Expr
}

func boolPtr(b bool) *bool { return &b }

// WithConfigurable returns a copy of d with Configurable set.
func (d PropertyDescriptor) WithConfigurable(v bool) PropertyDescriptor {
	d.Configurable = boolPtr(v)
	return d
}

// WithEnumerable returns a copy of d with Enumerable set.
func (d PropertyDescriptor) WithEnumerable(v bool) PropertyDescriptor {
	d.Enumerable = boolPtr(v)
	return d
}

// WithWritable returns a copy of d with Writable set.
func (d PropertyDescriptor) WithWritable(v bool) PropertyDescriptor {
	d.Writable = boolPtr(v)
	return d
}

// WithValue returns a copy of d with Value set.
func (d PropertyDescriptor) WithValue(v js_ast.Expr) PropertyDescriptor {
	d.Value = &v
	return d
}

// WithGet returns a copy of d with Get set.
func (d PropertyDescriptor) WithGet(v js_ast.Expr) PropertyDescriptor {
	d.Get = &v
	return d
}

// WithSet returns a copy of d with Set set.
func (d PropertyDescriptor) WithSet(v js_ast.Expr) PropertyDescriptor {
	d.Set = &v
	return d
}

// IsNone reports whether every attribute is absent.
func (d PropertyDescriptor) IsNone() bool {
	return d.Configurable == nil && d.Enumerable == nil && d.Writable == nil &&
		d.Value == nil && d.Get == nil && d.Set == nil
}

// IsAccessorDescriptor reports whether d includes a Get or Set attribute.
// https://tc39.es/ecma262/#sec-isaccessordescriptor
func (d PropertyDescriptor) IsAccessorDescriptor() bool {
	return d.Get != nil || d.Set != nil
}

// IsDataDescriptor reports whether d includes a Value or Writable attribute.
// https://tc39.es/ecma262/#sec-isdatadescriptor
func (d PropertyDescriptor) IsDataDescriptor() bool {
	return d.Value != nil || d.Writable != nil
}

// IsGenericDescriptor reports whether d is neither an accessor nor a data
// descriptor (only Configurable/Enumerable set, or nothing at all).
// https://tc39.es/ecma262/#sec-isgenericdescriptor
func (d PropertyDescriptor) IsGenericDescriptor() bool {
	return !d.IsAccessorDescriptor() && !d.IsDataDescriptor()
}

// IsValid reports whether d obeys the one invariant a descriptor must
// never violate: it cannot be both an accessor and a data descriptor.
func (d PropertyDescriptor) IsValid() bool {
	return !(d.IsAccessorDescriptor() && d.IsDataDescriptor())
}

// CompletePropertyDescriptor fills in the defaults from the "default
// attribute values" table for any attribute still absent from d, the way
// boa's Property::default combined with FromValue's defaulting is used
// once a descriptor is about to be installed on an object rather than
// merely described. An absent Value (generic or data descriptor) or an
// absent Get/Set (accessor descriptor) is filled with undefined, so a
// descriptor with none of Value, Get, or Set present becomes a data
// descriptor whose value is undefined, per
// https://tc39.es/ecma262/#sec-completepropertydescriptor.
func CompletePropertyDescriptor(d PropertyDescriptor) PropertyDescriptor {
	if d.IsGenericDescriptor() || d.IsDataDescriptor() {
		if d.Value == nil {
			d.Value = &js_ast.Expr{Data: &js_ast.EUndefined{}}
		}
		if d.Writable == nil {
			d.Writable = boolPtr(false)
		}
	} else {
		if d.Get == nil {
			d.Get = &js_ast.Expr{Data: &js_ast.EUndefined{}}
		}
		if d.Set == nil {
			d.Set = &js_ast.Expr{Data: &js_ast.EUndefined{}}
		}
	}
	if d.Configurable == nil {
		d.Configurable = boolPtr(false)
	}
	if d.Enumerable == nil {
		d.Enumerable = boolPtr(false)
	}
	return d
}
