// Package objgraph inspects the reference graph that the iterator adapters expose through their traversal hook.
//
// Only objects implementing iterkit.Traverser have outgoing edges.
// Everything else, including functions, is a leaf.
package objgraph

import (
	"errors"
	"reflect"

	"go.llib.dev/iterbridge/pkg/iterkit"
)

// Walk visits every object reachable from root, depth first, excluding root itself.
// Each object is visited once, identity is decided by pointer for reference types, and by value otherwise.
// Functions have no identity, they are visited every time they are referenced.
// Returning a non-nil error from fn stops the walk, and Walk returns that error.
func Walk(root any, fn func(ref any) error) error {
	seen := map[any]struct{}{}
	if k, ok := key(root); ok {
		seen[k] = struct{}{}
	}
	return walk(root, seen, fn)
}

func walk(obj any, seen map[any]struct{}, fn func(ref any) error) error {
	tr, ok := obj.(iterkit.Traverser)
	if !ok {
		return nil
	}
	return tr.Traverse(func(ref any) error {
		if k, ok := key(ref); ok {
			if _, ok := seen[k]; ok {
				return nil
			}
			seen[k] = struct{}{}
		}
		if err := fn(ref); err != nil {
			return err
		}
		return walk(ref, seen, fn)
	})
}

// Refs returns the direct references of obj.
func Refs(obj any) []any {
	tr, ok := obj.(iterkit.Traverser)
	if !ok {
		return nil
	}
	var refs []any
	_ = tr.Traverse(func(ref any) error {
		refs = append(refs, ref)
		return nil
	})
	return refs
}

var errFound = errors.New("found")

// Reachable reports whether target can be reached from root.
func Reachable(root, target any) bool {
	tk, ok := key(target)
	if !ok {
		return false
	}
	err := walkAll(root, func(ref any) error {
		if k, ok := key(ref); ok && k == tk {
			return errFound
		}
		return nil
	})
	return errors.Is(err, errFound)
}

// HasCycle reports whether root can reach itself through its references.
func HasCycle(root any) bool {
	return Reachable(root, root)
}

// walkAll is Walk without marking root as seen, so an edge back to root is still reported.
func walkAll(root any, fn func(ref any) error) error {
	return walk(root, map[any]struct{}{}, fn)
}

// key returns a comparable identity for v.
func key(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		// closures of the same function share their code pointer
		return nil, false
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		return identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	}
	if rv.Type().Comparable() {
		return v, true
	}
	return nil, false
}

type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}
