package collections

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// MacroFunc is a named operation that can be run on any list.
//
// The list arrives as an any so that one registry serves every List[T] and
// LinkedList[T] instantiation. Most macros only read the list; build those
// with [TypedMacro], which hands over the [Enumerable] view and rejects lists
// of the wrong element type.
type MacroFunc func(list any, args ...any) (any, error)

// TypedMacro adapts fn to a [MacroFunc] for lists of T. The resulting macro
// accepts either list kind and fails with [ErrTypeMismatch] for anything
// that is not a non-nil Enumerable[T].
//
//	collections.RegisterMacro("sum", collections.TypedMacro(
//	    func(e collections.Enumerable[int], _ ...any) (any, error) {
//	        total := 0
//	        for n := range e.All() {
//	            total += n
//	        }
//	        return total, nil
//	    }))
//
//	total, _ := collections.NewLinkedList(1, 2, 3).Macro("sum") // 6
func TypedMacro[T any](fn func(e Enumerable[T], args ...any) (any, error)) MacroFunc {
	return func(list any, args ...any) (any, error) {
		e, ok := list.(Enumerable[T])
		if !ok || isNilList(e) {
			return nil, fmt.Errorf("%w: macro expects a list of %s, got %T", ErrTypeMismatch, reflect.TypeFor[T](), list)
		}
		return fn(e, args...)
	}
}

func isNilList[T any](e Enumerable[T]) bool {
	switch l := e.(type) {
	case *List[T]:
		return l == nil
	case *LinkedList[T]:
		return l == nil
	}
	return false
}

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro stores fn under name, replacing any earlier macro with that
// name. Safe to call from multiple goroutines.
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// Macros returns the registered macro names in sorted order.
func Macros() []string {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	names := make([]string, 0, len(macroRegistry.macros))
	for name := range macroRegistry.macros {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro runs the named macro on list. An unknown name wraps
// [ErrMacroNotFound]; an error from the macro itself is wrapped with the
// macro name.
func CallMacro(name string, list any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	out, err := fn(list, args...)
	if err != nil {
		return nil, fmt.Errorf("collections: macro %q: %w", name, err)
	}
	return out, nil
}

// Macro runs the named registered macro on l, forwarding args.
func (l *List[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}

// Macro runs the named registered macro on l, forwarding args.
func (l *LinkedList[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}
