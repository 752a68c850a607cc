package js_runtime

import (
	"testing"

	"github.com/1ntEgr8/ecmafront/internal/js_ast"
)

func TestNewDescriptorIsNone(t *testing.T) {
	var d PropertyDescriptor
	if !d.IsNone() {
		t.Fatalf("zero-value PropertyDescriptor should be none")
	}
	if !d.IsGenericDescriptor() {
		t.Fatalf("zero-value PropertyDescriptor should be generic")
	}
}

func TestWithValueIsDataDescriptor(t *testing.T) {
	d := PropertyDescriptor{}.WithValue(js_ast.Expr{Data: &js_ast.ENumber{Value: 1}})
	if !d.IsDataDescriptor() {
		t.Fatalf("descriptor with Value should be a data descriptor")
	}
	if d.IsAccessorDescriptor() {
		t.Fatalf("descriptor with only Value should not be an accessor descriptor")
	}
	if !d.IsValid() {
		t.Fatalf("data-only descriptor should be valid")
	}
}

func TestWithGetIsAccessorDescriptor(t *testing.T) {
	getter := js_ast.Expr{Data: &js_ast.EFunction{}}
	d := PropertyDescriptor{}.WithGet(getter)
	if !d.IsAccessorDescriptor() {
		t.Fatalf("descriptor with Get should be an accessor descriptor")
	}
	if d.IsDataDescriptor() {
		t.Fatalf("descriptor with only Get should not be a data descriptor")
	}
	if !d.IsValid() {
		t.Fatalf("accessor-only descriptor should be valid")
	}
}

func TestDescriptorCannotBeBothAccessorAndData(t *testing.T) {
	d := PropertyDescriptor{}.
		WithValue(js_ast.Expr{Data: &js_ast.ENumber{Value: 1}}).
		WithGet(js_ast.Expr{Data: &js_ast.EFunction{}})
	if !d.IsDataDescriptor() || !d.IsAccessorDescriptor() {
		t.Fatalf("setup error: expected both Value and Get present")
	}
	if d.IsValid() {
		t.Fatalf("descriptor with both Value and Get should be invalid")
	}
}

func TestAbsentIsDistinctFromFalse(t *testing.T) {
	unspecified := PropertyDescriptor{}
	explicitlyFalse := PropertyDescriptor{}.WithEnumerable(false)

	if unspecified.Enumerable != nil {
		t.Fatalf("unspecified Enumerable should be nil, not a pointer to false")
	}
	if explicitlyFalse.Enumerable == nil || *explicitlyFalse.Enumerable != false {
		t.Fatalf("explicitly-false Enumerable should be a non-nil pointer to false")
	}
}

func TestCompletePropertyDescriptorFillsDataDefaults(t *testing.T) {
	d := CompletePropertyDescriptor(PropertyDescriptor{})
	if d.Value == nil {
		t.Fatalf("completed generic descriptor should default Value to undefined")
	}
	if _, ok := d.Value.Data.(*js_ast.EUndefined); !ok {
		t.Fatalf("completed Value default should be EUndefined, got %T", d.Value.Data)
	}
	if d.Writable == nil || *d.Writable != false {
		t.Fatalf("completed descriptor should default Writable to false")
	}
	if d.Configurable == nil || *d.Configurable != false {
		t.Fatalf("completed descriptor should default Configurable to false")
	}
	if d.Enumerable == nil || *d.Enumerable != false {
		t.Fatalf("completed descriptor should default Enumerable to false")
	}
}

func TestCompletePropertyDescriptorFillsAccessorDefaults(t *testing.T) {
	getter := js_ast.Expr{Data: &js_ast.EFunction{}}
	d := CompletePropertyDescriptor(PropertyDescriptor{}.WithGet(getter))
	if d.Set == nil {
		t.Fatalf("completed accessor descriptor should default Set to undefined")
	}
	if _, ok := d.Set.Data.(*js_ast.EUndefined); !ok {
		t.Fatalf("completed Set default should be EUndefined, got %T", d.Set.Data)
	}
	if d.Value != nil || d.Writable != nil {
		t.Fatalf("completed accessor descriptor should not gain data attributes")
	}
}

func TestDescriptorPreservesExplicitValues(t *testing.T) {
	d := PropertyDescriptor{}.WithConfigurable(true).WithWritable(true)
	if d.Configurable == nil || *d.Configurable != true {
		t.Fatalf("explicit Configurable should round-trip")
	}
	if d.Writable == nil || *d.Writable != true {
		t.Fatalf("explicit Writable should round-trip")
	}
}
