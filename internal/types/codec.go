package types

import (
	"fmt"
	"strconv"

	"github.com/you-not-fish/lobster/internal/errors"
)

// Value is a decoded runtime value: int64 for integral types, enum
// discriminants and addresses, bool, float64, string, []Value for arrays
// and Record for classes.
type Value = any

// Record is the decoded value of a class object, keyed by member name.
// The base class subobject is keyed by BaseKey of the base class name,
// e.g. "::Card".
type Record map[string]Value

// Bytes is the object representation of a value: one memory cell per
// byte of the type's size. Scalars keep their whole value in the first
// cell and pad the rest with zeros.
type Bytes []Value

// ValueToBytes encodes v as an object of type t. The result has exactly
// t.Size() cells.
func ValueToBytes(t Type, v Value) (Bytes, error) {
	b, err := encode(t, v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// BytesToValue decodes an object of type t. b must have exactly t.Size()
// cells.
func BytesToValue(t Type, b Bytes) (Value, error) {
	if !IsComplete(t) {
		return nil, errors.Incomplete(errors.PhaseDecode, t.String())
	}
	if int64(len(b)) != t.Size() {
		return nil, errors.SizeMismatch(errors.PhaseDecode, nil, t.String(), int64(len(b)), t.Size())
	}
	v, err := decode(t, b)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func encode(t Type, v Value) (Bytes, *errors.Error) {
	if !IsComplete(t) {
		return nil, errors.Incomplete(errors.PhaseEncode, t.String())
	}

	switch t := t.(type) {
	case *Reference:
		return encode(t.elem, v)

	case *Array:
		elems, ok := v.([]Value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, nil, t.String(), v)
		}
		if int64(len(elems)) != t.length {
			return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
				Type(t.String()).
				Detail("got %d elements, want %d", len(elems), t.length).
				Build()
		}
		out := make(Bytes, 0, t.Size())
		for i, e := range elems {
			eb, err := encode(t.elem, e)
			if err != nil {
				return nil, err.WithPrefix("[" + strconv.Itoa(i) + "]")
			}
			out = append(out, eb...)
		}
		return padTo(out, t.Size()), nil

	case *Class:
		rec, ok := asRecord(v)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, nil, t.String(), v)
		}
		out := make(Bytes, 0, t.Size())
		for _, so := range t.def.subobjects {
			sv, ok := rec[so.Key()]
			if !ok {
				return nil, errors.FieldMissing(errors.PhaseEncode, []string{so.Name}, so.Key())
			}
			sb, err := encode(so.Type, sv)
			if err != nil {
				return nil, err.WithPrefix(so.Name)
			}
			out = append(out, sb...)
		}
		return padTo(out, t.Size()), nil

	case *Func:
		return nil, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Type(t.String()).
			Detail("functions are not objects").
			Build()
	}

	cell, err := scalarCell(t, v)
	if err != nil {
		return nil, err
	}
	return padTo(Bytes{cell}, t.Size()), nil
}

// scalarCell normalizes v to the representation stored in the first cell
// of an object of scalar type t.
func scalarCell(t Type, v Value) (Value, *errors.Error) {
	mismatch := func() *errors.Error {
		return errors.TypeMismatch(errors.PhaseEncode, nil, t.String(), v)
	}

	switch t := t.(type) {
	case *Basic:
		switch {
		case t.kind == Bool:
			if b, ok := v.(bool); ok {
				return b, nil
			}
			return nil, mismatch()
		case t.info&IsInteger != 0:
			if i, ok := toInt64(v); ok {
				return i, nil
			}
			return nil, mismatch()
		case t.info&IsFloat != 0:
			if f, ok := toFloat64(v); ok {
				return f, nil
			}
			return nil, mismatch()
		case t.kind == String:
			if s, ok := v.(string); ok {
				return s, nil
			}
			return nil, mismatch()
		}
		// streams and unknown hold opaque handles
		return v, nil

	case *Enum:
		if name, ok := v.(string); ok {
			if i, ok := t.Index(name); ok {
				return int64(i), nil
			}
			return nil, errors.InvalidEnum(errors.PhaseEncode, nil, v, t.def.name)
		}
		i, ok := toInt64(v)
		if !ok {
			return nil, mismatch()
		}
		if i < 0 || i >= int64(t.Len()) {
			return nil, errors.InvalidEnum(errors.PhaseEncode, nil, v, t.def.name)
		}
		return i, nil

	case *Pointer:
		if t.IsFuncPointer() {
			if _, ok := v.(Named); ok {
				return v, nil
			}
		}
		if addr, ok := toInt64(v); ok {
			return addr, nil
		}
		return nil, mismatch()
	}
	return nil, mismatch()
}

func decode(t Type, b Bytes) (Value, *errors.Error) {
	switch t := t.(type) {
	case *Reference:
		return decode(t.elem, b)

	case *Array:
		elemSize := t.elem.Size()
		out := make([]Value, t.length)
		for i := range out {
			off := int64(i) * elemSize
			ev, err := decode(t.elem, b[off:off+elemSize])
			if err != nil {
				return nil, err.WithPrefix("[" + strconv.Itoa(i) + "]")
			}
			out[i] = ev
		}
		return out, nil

	case *Class:
		rec := make(Record, len(t.def.subobjects))
		var off int64
		for _, so := range t.def.subobjects {
			size := so.Type.Size()
			sv, err := decode(so.Type, b[off:off+size])
			if err != nil {
				return nil, err.WithPrefix(so.Name)
			}
			rec[so.Key()] = sv
			off += size
		}
		return rec, nil

	case *Func:
		return nil, errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			Type(t.String()).
			Detail("functions are not objects").
			Build()
	}

	if len(b) == 0 {
		return nil, nil
	}
	cell := b[0]
	invalid := func() *errors.Error {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Type(t.String()).
			Value(cell).
			Detail("cannot decode %v (%T)", cell, cell).
			Build()
	}

	switch t := t.(type) {
	case *Basic:
		switch {
		case t.kind == Bool:
			return truthy(cell), nil
		case t.info&IsInteger != 0:
			if i, ok := toInt64(cell); ok {
				return i, nil
			}
			return nil, invalid()
		case t.info&IsFloat != 0:
			if f, ok := toFloat64(cell); ok {
				return f, nil
			}
			return nil, invalid()
		case t.kind == String:
			if s, ok := cell.(string); ok {
				return s, nil
			}
			return fmt.Sprint(cell), nil
		}
		return cell, nil

	case *Enum:
		i, ok := toInt64(cell)
		if !ok {
			return nil, invalid()
		}
		if i < 0 || i >= int64(t.Len()) {
			return nil, errors.InvalidEnum(errors.PhaseDecode, nil, cell, t.def.name)
		}
		return i, nil

	case *Pointer:
		if t.IsFuncPointer() {
			if _, ok := cell.(Named); ok {
				return cell, nil
			}
		}
		if addr, ok := toInt64(cell); ok {
			return addr, nil
		}
		return nil, invalid()
	}
	return cell, nil
}

// padTo appends zero cells to b until it has n cells.
func padTo(b Bytes, n int64) Bytes {
	for int64(len(b)) < n {
		b = append(b, int64(0))
	}
	return b
}

func asRecord(v Value) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, true
	case map[string]Value:
		return Record(r), true
	}
	return nil, false
}

func toInt64(v Value) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func toFloat64(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// truthy interprets a memory cell as a boolean: any non-zero cell is true.
func truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if i, ok := toInt64(v); ok {
		return i != 0
	}
	if f, ok := toFloat64(v); ok {
		return f != 0
	}
	return true
}
