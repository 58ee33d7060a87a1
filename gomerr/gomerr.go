package gomerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unicode"
)

type Gomerr interface {
	error
	Unwrap() error
	Is(err error) bool

	Wrap(err error) Gomerr
	AddAttribute(key string, value any) Gomerr
	AddAttributes(keysAndValues ...any) Gomerr

	Attribute(key string) (value any)
	Attributes() map[string]any
	String() string
	ToMap() map[string]any

	// Ensures that Gomerrs are created through Build
	isFromBuildFunc() bool
}

var gomerrType = reflect.TypeOf((*Gomerr)(nil)).Elem()

// Build populates g's embedded Gomerr and then assigns the attributes, in order, to g's remaining exported fields.
// An attribute whose type is not assignable to the corresponding field is skipped (but still consumes the field).
func Build(g Gomerr, attributes ...any) Gomerr {
	build(reflect.ValueOf(g).Elem(), attributes, newGomerr(4, g))

	return g
}

func build(v reflect.Value, attributes []any, gomerr *gomerr) (attributesProcessed int) {
	attributesLength := len(attributes)
	for i := 0; i < v.NumField(); i++ {
		fv := v.Field(i)

		if !fv.CanSet() || !fv.IsZero() {
			continue
		}

		if v.Type().Field(i).Anonymous && gomerrType.AssignableTo(fv.Type()) {
			fv.Set(reflect.ValueOf(gomerr))
			continue
		}

		if attributesProcessed < attributesLength {
			av := reflect.ValueOf(attributes[attributesProcessed])
			if av.IsValid() && av.Type().AssignableTo(fv.Type()) {
				fv.Set(av)
			}
			attributesProcessed++
		}
	}

	return
}

// ErrorAs returns the first error in err's chain that is a T, or T's zero value if there is none.
func ErrorAs[T error](err error) T {
	var target T
	if err != nil && errors.As(err, &target) {
		return target
	}

	var zero T
	return zero
}

type gomerr struct {
	self       Gomerr
	wrapped    error
	attributes map[string]any
	stack      []string
}

func newGomerr(stackSkip int, self Gomerr) *gomerr {
	g := &gomerr{self: self}
	g.stack = fillStack(stackSkip)

	return g
}

func fillStack(stackSkip int) []string {
	callers := make([]uintptr, 30)
	depth := runtime.Callers(stackSkip+1, callers) // +1 for compared to runtime.Caller()
	callers = callers[:depth]

	stack := make([]string, 0, depth)
	frames := runtime.CallersFrames(callers)
	for {
		frame, more := frames.Next()
		function := frame.Function[strings.LastIndexByte(frame.Function, '/')+1:]
		stack = append(stack, fmt.Sprintf("%s -- %s:%d", function, frame.File, frame.Line))
		if !more {
			break
		}
	}

	return stack
}

func (g *gomerr) Wrap(err error) Gomerr {
	if g.wrapped != nil {
		panic("cannot change wrapped error once set")
	}

	g.wrapped = err

	return g.self
}

func (g *gomerr) Attribute(key string) any {
	return g.attributes[key]
}

func (g *gomerr) AddAttribute(key string, value any) Gomerr {
	g.addAttribute(key, value)
	return g.self
}

func (g *gomerr) AddAttributes(keysAndValues ...any) Gomerr {
	if len(keysAndValues)%2 != 0 {
		return Configuration("AddAttributes() requires an even number of arguments for keysAndValues").AddAttributes("Input", keysAndValues, "TargetedError", g)
	}

	for i := 0; i < len(keysAndValues); i += 2 {
		var key string
		switch k := keysAndValues[i].(type) {
		case string:
			key = k
		case fmt.Stringer:
			key = k.String()
		default:
			key = fmt.Sprintf("[Non-string key type %T]: %v", k, k)
		}

		g.addAttribute(key, keysAndValues[i+1])
	}

	return g.self
}

func (g *gomerr) addAttribute(key string, value any) {
	if g.attributes == nil {
		g.attributes = make(map[string]any)
	}

	if existing, exists := g.attributes[key]; exists {
		valueSlice, ok := existing.([]any)
		if !ok {
			valueSlice = []any{existing}
		}
		g.attributes[key] = append(valueSlice, value)
	} else {
		g.attributes[key] = value
	}
}

func (g *gomerr) Is(err error) bool {
	return reflect.TypeOf(g.self) == reflect.TypeOf(err)
}

// Implicitly used by errors.Is()/errors.As()

func (g *gomerr) Unwrap() error {
	return g.wrapped
}

func (g *gomerr) Attributes() map[string]any {
	return g.attributes
}

func (g *gomerr) ToMap() map[string]any {
	gt := reflect.TypeOf(g.self)
	gte := gt.Elem()
	gve := reflect.ValueOf(g.self).Elem()

	m := make(map[string]any, gte.NumField()+1)
	m["$.errorType"] = gt.String()

	for i := 0; i < gte.NumField(); i++ {
		ft := gte.Field(i)
		fv := gve.Field(i)
		if ft.Anonymous || unicode.IsLower([]rune(ft.Name)[0]) || !fv.IsValid() {
			continue
		}

		fieldKey := ft.Name
		fi := fv.Interface()
		if tag := ft.Tag.Get("gomerr"); tag == "include_type" {
			fieldKey += " (" + fv.Type().String() + ")"
		}
		if s, ok := fi.(fmt.Stringer); ok {
			fi = s.String()
		}
		m[fieldKey] = fi
	}

	if len(g.attributes) > 0 {
		m["_attributes"] = g.attributes
	}

	if wrapped := g.Unwrap(); wrapped != nil {
		var w map[string]any
		if gWrapped, ok := wrapped.(Gomerr); ok {
			w = gWrapped.ToMap()
		} else {
			w = map[string]any{
				"$.errorType":  reflect.TypeOf(wrapped).String(),
				"_errorString": wrapped.Error(),
				"_stack":       g.stack, // provide a stack for the deepest error (non-Gomerr)
			}
		}
		m["_wrapped"] = w
	} else {
		m["_stack"] = g.stack // provide a stack for the deepest error (Gomerr)
	}

	return m
}

func (g *gomerr) Error() string {
	return g.string(json.Marshal)
}

func (g *gomerr) String() string {
	return g.string(func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	})
}

func (g *gomerr) string(marshal func(any) ([]byte, error)) string {
	if bytes, err := marshal(g.self.ToMap()); err != nil {
		return "Failed to create gomerr string representation: " + err.Error()
	} else {
		return string(bytes)
	}
}

func (g *gomerr) isFromBuildFunc() bool {
	return true
}
