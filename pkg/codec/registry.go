package codec

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Registry resolves decoders at run time: by type tag for schema-driven
// callers such as the CLI, and by output type for callers that cannot reach
// the typed constructors. The typed constructors (scalars, Optional,
// Product2..Product10) remain the compile-time resolution path; the
// registry exists as the extension point for additional scalar types and
// for type-erased contexts.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byTag  map[string]RowDecoder
	byType map[reflect.Type]RowDecoder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byTag:  make(map[string]RowDecoder),
		byType: make(map[reflect.Type]RowDecoder),
	}
}

// RegisterScalar adds a scalar decoder to the registry under its type tag,
// together with its optional form under "?tag" and its output types for
// Resolve. Registering a tag twice fails with a ConfigurationError.
func RegisterScalar[T any](r *Registry, d *ScalarDecoder[T]) error {
	opt, err := OptionalAny(d)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byTag[d.Name()]; dup {
		return &ConfigurationError{Reason: fmt.Sprintf("scalar %q already registered", d.Name())}
	}
	r.byTag[d.Name()] = d
	r.byTag["?"+d.Name()] = opt

	concrete := reflect.TypeOf((*T)(nil)).Elem()
	if _, taken := r.byType[concrete]; !taken {
		r.byType[concrete] = d
		r.byType[reflect.TypeOf(Null[T]{})] = Optional(d)
	}
	return nil
}

// Resolve returns the registered decoder whose output type is T. An
// unsupported T fails here, before any row is decoded.
func Resolve[T any](r *Registry) (Decoder[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.RLock()
	d, ok := r.byType[t]
	r.mu.RUnlock()
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("no decoder registered for type %s", t)}
	}
	td, ok := d.(Decoder[T])
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("decoder registered for type %s has the wrong output type", t)}
	}
	return td, nil
}

// Lookup returns the decoder for a type tag such as "i64" or "?string".
func (r *Registry) Lookup(tag string) (RowDecoder, error) {
	r.mu.RLock()
	d, ok := r.byTag[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown type tag %q", tag)}
	}
	return d, nil
}

// Schema resolves a comma-separated tag list such as "i32,?string,f64" into
// a decoder over those columns in declared order. Every resolution failure
// surfaces here, never during decode.
func (r *Registry) Schema(spec string) (Decoder[[]any], error) {
	tags := strings.Split(spec, ",")
	parts := make([]RowDecoder, 0, len(tags))
	for _, tag := range tags {
		d, err := r.Lookup(strings.TrimSpace(tag))
		if err != nil {
			return nil, err
		}
		parts = append(parts, d)
	}
	if len(parts) == 1 {
		return oneColumn{d: parts[0]}, nil
	}
	return NewProduct(parts...)
}

// oneColumn lifts a single-column decoder to the []any shape Schema
// returns, so one-column schemas do not need a product wrapper.
type oneColumn struct {
	d RowDecoder
}

func (o oneColumn) Arity() int { return 1 }

func (o oneColumn) Kind() Kind { return o.d.Kind() }

func (o oneColumn) Decode(rd RowData) ([]any, error) {
	v, err := o.d.DecodeAny(rd)
	if err != nil {
		return nil, err
	}
	return []any{v}, nil
}

func (o oneColumn) DecodeAny(rd RowData) (any, error) {
	return o.Decode(rd)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the shared registry pre-populated with the
// built-in scalar decoders.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		mustRegister(defaultRegistry, Int16())
		mustRegister(defaultRegistry, Int32())
		mustRegister(defaultRegistry, Int64())
		mustRegister(defaultRegistry, Float32())
		mustRegister(defaultRegistry, Float64())
		mustRegister(defaultRegistry, Bool())
		mustRegister(defaultRegistry, String())
		mustRegister(defaultRegistry, Bytes())
		mustRegister(defaultRegistry, Decimal())
	})
	return defaultRegistry
}

func mustRegister[T any](r *Registry, d *ScalarDecoder[T]) {
	if err := RegisterScalar(r, d); err != nil {
		panic(err)
	}
}
