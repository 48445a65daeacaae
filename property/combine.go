package property

// Handler computes the value of a key when the next object in a chain carries
// it. acc is the accumulated container at the key's nesting level and is owned
// by the combinator, so a handler may delete sibling keys from it. next is the
// incoming container at the same level and must not be modified. The returned
// value is stored under the key; nil removes the key.
type Handler func(acc, next Object) any

type combineOptions struct {
	fullOverride map[string]struct{}
	handlers     map[string]Handler
}

// Option configures Combine.
type Option func(*combineOptions)

// WithFullOverride makes the listed keys replace accumulated values wholesale
// instead of merging nested objects.
func WithFullOverride(keys ...string) Option {
	return func(o *combineOptions) {
		if o.fullOverride == nil {
			o.fullOverride = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			o.fullOverride[k] = struct{}{}
		}
	}
}

// WithSpecialHandler registers h for key at any nesting level.
func WithSpecialHandler(key string, h Handler) Option {
	return func(o *combineOptions) {
		if o.handlers == nil {
			o.handlers = make(map[string]Handler)
		}
		o.handlers[key] = h
	}
}

// Combine merges chain from lowest to highest priority into a new object.
//
// nil elements and nil values are skipped. Keys with a special handler are
// computed by the handler, full-override keys and slices replace, nested
// objects merge recursively and primitives replace. Inputs are never
// modified and the result shares no maps or slices with them.
func Combine(chain []Object, opts ...Option) Object {
	var o combineOptions
	for _, opt := range opts {
		opt(&o)
	}
	out := Object{}
	for _, next := range chain {
		if next == nil {
			continue
		}
		o.mergeInto(out, next)
	}
	return out
}

func (o *combineOptions) mergeInto(dst, src Object) {
	for key, val := range src {
		if h, ok := o.handlers[key]; ok {
			if val == nil {
				continue
			}
			if res := h(dst, src); res == nil {
				delete(dst, key)
			} else {
				dst[key] = cloneValue(res)
			}
			continue
		}
		if val == nil {
			continue
		}
		if _, ok := o.fullOverride[key]; ok {
			dst[key] = cloneValue(val)
			continue
		}
		srcObj, ok := AsObject(val)
		if !ok {
			dst[key] = cloneValue(val)
			continue
		}
		// everything stored in dst was copied on the way in, it is safe to
		// merge into it directly
		dstObj, ok := AsObject(dst[key])
		if !ok {
			dstObj = Object{}
			dst[key] = dstObj
		}
		o.mergeInto(dstObj, srcObj)
	}
}

const (
	keyIndent    = "indent"
	keyFirstLine = "firstLine"
	keyHanging   = "hanging"
)

// IndentHandlers returns options enforcing that firstLine and hanging never
// coexist in the result: a level that sets one of them clears the other from
// what was accumulated below it.
func IndentHandlers() []Option {
	return []Option{
		WithSpecialHandler(keyFirstLine, exclusiveWith(keyFirstLine, keyHanging)),
		WithSpecialHandler(keyHanging, exclusiveWith(keyHanging, keyFirstLine)),
	}
}

func exclusiveWith(key, other string) Handler {
	return func(acc, next Object) any {
		if !next.Has(other) {
			delete(acc, other)
		}
		return next[key]
	}
}

// CombineIndent combines only the indent object of every chain element.
// The returned object holds a single "indent" key, or is empty when no
// element carries indentation.
func CombineIndent(chain []Object) Object {
	only := make([]Object, 0, len(chain))
	for _, c := range chain {
		if c.Has(keyIndent) {
			only = append(only, Object{keyIndent: c[keyIndent]})
		}
	}
	return Combine(only, IndentHandlers()...)
}
