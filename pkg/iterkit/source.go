package iterkit

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// SourceKind is the closed set of source shapes the normalizer understands.
type SourceKind int

const (
	// KindEmpty is an absent source: untyped nil, or a nil pointer, func, chan or interface.
	KindEmpty SourceKind = iota
	// KindArrayLike is a slice, array, string, or a value with Len() int and At(int) X.
	KindArrayLike
	// KindProtocol is a value with a Cursor method, a bare cursor, or an iter.Seq or iter.Seq2 shaped function.
	KindProtocol
	// KindGeneratorFunc is a function without arguments that returns a protocol value.
	KindGeneratorFunc
	// KindKeyedObject is a map or a struct, enumerated as KV pairs.
	KindKeyedObject
	// KindScalar is any other value, enumerated as a single element.
	KindScalar
)

func (k SourceKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindArrayLike:
		return "array-like"
	case KindProtocol:
		return "protocol"
	case KindGeneratorFunc:
		return "generator"
	case KindKeyedObject:
		return "keyed"
	case KindScalar:
		return "scalar"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// Tag is the textual form an enumerable reports for a source of this kind.
func (k SourceKind) Tag() string {
	switch k {
	case KindEmpty:
		return "[Empty Iterable]"
	case KindArrayLike, KindScalar:
		return "[Array Iterable]"
	case KindKeyedObject:
		return "[Object Iterable]"
	default:
		return "[Iterable]"
	}
}

// Classify tells the kind of an arbitrary source.
// It never fails and has no side effects: methods and functions are inspected, not called.
func Classify(src any) SourceKind {
	if src == nil {
		return KindEmpty
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return KindEmpty
		}
	}
	return classifyType(rv.Type())
}

func classifyType(typ reflect.Type) SourceKind {
	switch {
	case typ.Kind() == reflect.Slice, typ.Kind() == reflect.Array, typ.Kind() == reflect.String:
		return KindArrayLike
	case isIndexerType(typ):
		return KindArrayLike
	case isProtocolType(typ):
		return KindProtocol
	case isGeneratorType(typ):
		return KindGeneratorFunc
	case typ.Kind() == reflect.Map, typ.Kind() == reflect.Struct:
		return KindKeyedObject
	case typ.Kind() == reflect.Pointer && typ.Elem().Kind() == reflect.Struct:
		return KindKeyedObject
	default:
		return KindScalar
	}
}

// Normalize classifies the source and adapts it to an Iterable of dynamic values.
//
//   - strings yield runes
//   - maps yield KV[any, any] pairs in ascending key order
//   - structs yield KV[any, any]{K: field name, V: field value} for exported fields in declaration order
//   - iter.Seq2 shaped functions yield KV[any, any] pairs
//   - scalars yield themselves once
//
// Restartable sources stay restartable, bare cursors become single use.
func Normalize(src any) (Iterable[any], SourceKind) {
	kind := Classify(src)
	switch kind {
	case KindEmpty:
		return Empty[any](), kind
	case KindArrayLike:
		return arrayLike(src), kind
	case KindProtocol:
		return protocol(reflect.ValueOf(src)), kind
	case KindGeneratorFunc:
		return generator(reflect.ValueOf(src)), kind
	case KindKeyedObject:
		return keyed(reflect.ValueOf(src)), kind
	default:
		return Single[any](src), kind
	}
}

func arrayLike(src any) Iterable[any] {
	switch src := src.(type) {
	case []any:
		return Slice(src)
	case string:
		return Map(String(src), func(r rune) any { return r })
	case Indexer[any]:
		return indexerIterable{Indexer: src}
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectSlice{rv: rv}
	case reflect.String:
		return Map(String(rv.String()), func(r rune) any { return r })
	default:
		return reflectIndexer{
			length: rv.MethodByName("Len"),
			at:     rv.MethodByName("At"),
		}
	}
}

type indexerIterable struct{ Indexer[any] }

func (i indexerIterable) Cursor() Cursor[any] { return IndexCursor[any](i) }

type reflectSlice struct{ rv reflect.Value }

func (s reflectSlice) Len() int            { return s.rv.Len() }
func (s reflectSlice) At(index int) any    { return s.rv.Index(index).Interface() }
func (s reflectSlice) Cursor() Cursor[any] { return IndexCursor[any](s) }

type reflectIndexer struct {
	length reflect.Value
	at     reflect.Value
}

func (i reflectIndexer) Len() int {
	return int(i.length.Call(nil)[0].Int())
}

func (i reflectIndexer) At(index int) any {
	return i.at.Call([]reflect.Value{reflect.ValueOf(index)})[0].Interface()
}

func (i reflectIndexer) Cursor() Cursor[any] { return IndexCursor[any](i) }

func protocol(rv reflect.Value) Iterable[any] {
	typ := rv.Type()
	switch {
	case hasCursorMethod(typ):
		cursor := rv.MethodByName("Cursor")
		return IterableFunc[any](func() Cursor[any] {
			return reflectCursor(cursor.Call(nil)[0])
		})
	case isCursorType(typ):
		return FromCursor(reflectCursor(rv))
	case isSeqType(typ, 1):
		return FromSeq(reflectSeq(rv))
	default: // iter.Seq2 shape
		return FromSeq(reflectSeq2(rv))
	}
}

func generator(fn reflect.Value) Iterable[any] {
	return IterableFunc[any](func() Cursor[any] {
		out := fn.Call(nil)[0]
		if out.Kind() == reflect.Interface {
			out = out.Elem()
		}
		if !out.IsValid() || Classify(out.Interface()) != KindProtocol {
			return Empty[any]().Cursor()
		}
		return protocol(out).Cursor()
	})
}

func reflectCursor(c reflect.Value) Cursor[any] {
	if c.Kind() == reflect.Interface {
		if c.IsNil() {
			return Empty[any]().Cursor()
		}
		c = c.Elem()
	}
	if (c.Kind() == reflect.Pointer || c.Kind() == reflect.Func) && c.IsNil() {
		return Empty[any]().Cursor()
	}
	if c, ok := c.Interface().(Cursor[any]); ok {
		return c
	}
	var stops []func()
	if s, ok := c.Interface().(Stopper); ok {
		stops = append(stops, s.Stop)
	}
	next := c.MethodByName("Next")
	return FromPull(func() (any, bool) {
		out := next.Call(nil)
		if !out[1].Bool() {
			return nil, false
		}
		return out[0].Interface(), true
	}, stops...)
}

func reflectSeq(seq reflect.Value) iter.Seq[any] {
	yieldType := seq.Type().In(0)
	return func(yield func(any) bool) {
		fn := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface())).Convert(yieldType.Out(0))}
		})
		seq.Call([]reflect.Value{fn})
	}
}

func reflectSeq2(seq reflect.Value) iter.Seq[any] {
	yieldType := seq.Type().In(0)
	return func(yield func(any) bool) {
		fn := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			kv := KV[any, any]{K: args[0].Interface(), V: args[1].Interface()}
			return []reflect.Value{reflect.ValueOf(yield(kv)).Convert(yieldType.Out(0))}
		})
		seq.Call([]reflect.Value{fn})
	}
}

func keyed(rv reflect.Value) Iterable[any] {
	return IterableFunc[any](func() Cursor[any] {
		return Slice(keyValues(rv)).Cursor()
	})
}

func keyValues(rv reflect.Value) []any {
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	var kvs []any
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		kvs = make([]any, 0, len(keys))
		for _, k := range keys {
			kvs = append(kvs, KV[any, any]{K: k.Interface(), V: rv.MapIndex(k).Interface()})
		}
	case reflect.Struct:
		typ := rv.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			kvs = append(kvs, KV[any, any]{K: field.Name, V: rv.Field(i).Interface()})
		}
	}
	return kvs
}

// compareKeys orders map keys the way fmt prints maps:
// numbers and strings by value, mixed dynamic types by their kind and type name.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(boolInt(a.IsValid()), boolInt(b.IsValid()))
	}
	if a.Type() != b.Type() {
		if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
			return c
		}
		return strings.Compare(a.Type().String(), b.Type().String())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(boolInt(a.Bool()), boolInt(b.Bool()))
	default:
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var intType = reflect.TypeFor[int]()

// signature returns the parameter and result types of a method, without the receiver.
func signature(typ reflect.Type, name string) (in, out []reflect.Type, ok bool) {
	m, ok := typ.MethodByName(name)
	if !ok {
		return nil, nil, false
	}
	offset := 1
	if typ.Kind() == reflect.Interface {
		offset = 0
	}
	for i := offset; i < m.Type.NumIn(); i++ {
		in = append(in, m.Type.In(i))
	}
	for i := 0; i < m.Type.NumOut(); i++ {
		out = append(out, m.Type.Out(i))
	}
	return in, out, !m.Type.IsVariadic()
}

func isIndexerType(typ reflect.Type) bool {
	in, out, ok := signature(typ, "Len")
	if !ok || len(in) != 0 || len(out) != 1 || out[0] != intType {
		return false
	}
	in, out, ok = signature(typ, "At")
	return ok && len(in) == 1 && in[0] == intType && len(out) == 1
}

func isCursorType(typ reflect.Type) bool {
	in, out, ok := signature(typ, "Next")
	return ok && len(in) == 0 && len(out) == 2 && out[1].Kind() == reflect.Bool
}

func hasCursorMethod(typ reflect.Type) bool {
	in, out, ok := signature(typ, "Cursor")
	return ok && len(in) == 0 && len(out) == 1 && isCursorType(out[0])
}

// isSeqType reports whether typ has the shape of iter.Seq (arity 1) or iter.Seq2 (arity 2).
func isSeqType(typ reflect.Type, arity int) bool {
	if typ.Kind() != reflect.Func || typ.NumIn() != 1 || typ.NumOut() != 0 {
		return false
	}
	yield := typ.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == arity &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool &&
		!yield.IsVariadic()
}

func isProtocolType(typ reflect.Type) bool {
	return hasCursorMethod(typ) || isCursorType(typ) || isSeqType(typ, 1) || isSeqType(typ, 2)
}

func isGeneratorType(typ reflect.Type) bool {
	return typ.Kind() == reflect.Func &&
		typ.NumIn() == 0 &&
		typ.NumOut() == 1 &&
		isProtocolType(typ.Out(0))
}
