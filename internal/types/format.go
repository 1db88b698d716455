package types

import (
	"fmt"
	"strconv"
	"strings"
)

// precedence orders declarator operators for parenthesization:
// simple types bind loosest, arrays and functions tightest.
func precedence(t Type) int {
	switch t.(type) {
	case *Pointer, *Reference:
		return 1
	case *Array, *Func:
		return 2
	}
	return 0
}

// parenthesize wraps the declarator s of outer in parentheses when the
// type it applies to binds more tightly.
func parenthesize(outer, inner Type, s string) string {
	if precedence(outer) < precedence(inner) {
		return "(" + s + ")"
	}
	return s
}

// TypeString renders t as a C declaration of varname, e.g.
// "int (*p)[3]". With excludeBase set, the leading base type is omitted
// and only the declarator is returned.
func TypeString(t Type, excludeBase bool, varname string) string {
	switch t := t.(type) {
	case *Basic:
		return simpleString(t.cv, t.spelling(), excludeBase, varname)
	case *Enum:
		return simpleString(t.cv, t.def.name, excludeBase, varname)
	case *Class:
		return simpleString(t.cv, t.def.name, excludeBase, varname)
	case *Pointer:
		return TypeString(t.elem, excludeBase, parenthesize(t, t.elem, declarator("*", t.cv, varname)))
	case *Reference:
		return TypeString(t.elem, excludeBase, parenthesize(t, t.elem, declarator("&", NoQual, varname)))
	case *Array:
		n := ""
		if t.known {
			n = strconv.FormatInt(t.length, 10)
		}
		return TypeString(t.elem, excludeBase, varname+"["+n+"]")
	case *Func:
		params := make([]string, len(t.params))
		for i, p := range t.params {
			params[i] = TypeString(p, false, "")
		}
		decl := varname + "(" + strings.Join(params, ",") + ")"
		if t.thisConst {
			decl += " const"
		}
		return TypeString(t.result, excludeBase, decl)
	}
	return "<nil>"
}

// DeclaratorString renders only the declarator part of a declaration of
// varname with type t, e.g. "*p[3]".
func DeclaratorString(t Type, varname string) string {
	return TypeString(t, true, varname)
}

func simpleString(cv Qualifiers, name string, excludeBase bool, varname string) string {
	if excludeBase {
		return varname
	}
	s := cv.prefix() + name
	if varname != "" {
		s += " " + varname
	}
	return s
}

// declarator builds a pointer or reference declarator: "*p", "*const p",
// "*const".
func declarator(op string, cv Qualifiers, varname string) string {
	q := strings.TrimSuffix(cv.prefix(), " ")
	if q == "" {
		return op + varname
	}
	if varname == "" {
		return op + q
	}
	return op + q + " " + varname
}

// EnglishString describes t in words, e.g. "an array of 3 pointers to
// const int".
func EnglishString(t Type, plural bool) string {
	switch t := t.(type) {
	case *Basic:
		return simpleEnglish(t.cv, t.spelling(), plural)
	case *Enum:
		return simpleEnglish(t.cv, t.def.name, plural)
	case *Class:
		return simpleEnglish(t.cv, t.def.name, plural)
	case *Pointer:
		if plural {
			return t.cv.prefix() + "pointers to " + EnglishString(t.elem, false)
		}
		return "a " + t.cv.prefix() + "pointer to " + EnglishString(t.elem, false)
	case *Reference:
		if plural {
			return "references to " + EnglishString(t.elem, false)
		}
		return "a reference to " + EnglishString(t.elem, false)
	case *Array:
		prefix := "an array of "
		if plural {
			prefix = "arrays of "
		}
		if !t.known {
			return prefix + EnglishString(t.elem, true)
		}
		return prefix + strconv.FormatInt(t.length, 10) + " " + EnglishString(t.elem, t.length > 1)
	case *Func:
		params := make([]string, len(t.params))
		for i, p := range t.params {
			params[i] = EnglishString(p, false)
		}
		if plural {
			return "functions that take (" + strings.Join(params, ", ") + ") and return " + EnglishString(t.result, false)
		}
		return "a function that takes (" + strings.Join(params, ", ") + ") and returns " + EnglishString(t.result, false)
	}
	return "<nil>"
}

func simpleEnglish(cv Qualifiers, name string, plural bool) string {
	word := cv.prefix() + name
	if plural {
		return word + "s"
	}
	return article(word) + " " + word
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}

// Named is implemented by runtime values that have a name to show in
// place of an address, such as functions stored in function pointers.
type Named interface {
	Name() string
}

// ValueToString renders a decoded value of type t the way it is shown to
// a user inspecting memory.
func ValueToString(t Type, v Value) string {
	switch t := t.(type) {
	case *Basic:
		return basicValueString(t, v)
	case *Enum:
		if i, ok := toInt64(v); ok {
			if name := t.Enumerator(i); name != "" {
				return name
			}
		}
		return fmt.Sprint(v)
	case *Pointer:
		if t.IsFuncPointer() {
			if n, ok := v.(Named); ok {
				return n.Name()
			}
		}
		if addr, ok := toInt64(v); ok {
			return "0x" + strconv.FormatInt(addr, 16)
		}
		return fmt.Sprint(v)
	case *Array:
		elems, ok := v.([]Value)
		if !ok {
			return fmt.Sprint(v)
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = ValueToString(t.elem, e)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Class:
		rec, ok := asRecord(v)
		if !ok {
			return fmt.Sprint(v)
		}
		parts := make([]string, 0, len(t.def.subobjects))
		for _, so := range t.def.subobjects {
			parts = append(parts, so.Name+": "+ValueToString(so.Type, rec[so.Key()]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(v)
}

func basicValueString(b *Basic, v Value) string {
	switch b.kind {
	case Char:
		if c, ok := toInt64(v); ok {
			return strconv.QuoteRune(rune(c))
		}
	case Bool:
		return strconv.FormatBool(truthy(v))
	case Float, Double:
		if f, ok := toFloat64(v); ok {
			s := strconv.FormatFloat(f, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eEnN") {
				s += "."
			}
			return s
		}
	case String, OStream, IStream:
		return strconv.Quote(fmt.Sprint(v))
	}
	return fmt.Sprint(v)
}

// ValueToOstreamString renders a decoded value of type t the way
// inserting it into an ostream prints it.
func ValueToOstreamString(t Type, v Value) string {
	if b, ok := t.(*Basic); ok {
		switch b.kind {
		case Char:
			if c, ok := toInt64(v); ok {
				return string(rune(c))
			}
		case Bool:
			if truthy(v) {
				return "1"
			}
			return "0"
		case String:
			return fmt.Sprint(v)
		}
	}
	return ValueToString(t, v)
}
