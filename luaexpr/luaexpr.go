// Package luaexpr exposes parsed expressions to gopher-lua.
//
// Expressions map to Lua values as follows:
//
//	Symbol      {symbol = "name"}
//	Integer     number
//	Text        string
//	Boolean     boolean
//	List        {list = {...}}
//	DottedPair  {list = {...}, tail = value}
//
// Lua numbers are float64. Integers beyond 2^53 cannot be represented
// exactly and are rejected with ErrPrecisionLoss.
package luaexpr

import (
	"errors"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/xiam/schemexp/ast"
	"github.com/xiam/schemexp/parser"
)

// ModuleName is the name the module is preloaded with
const ModuleName = "sexpr"

var (
	ErrUnsupportedValue = errors.New("unsupported lua value")
	ErrNotInteger       = errors.New("number is not an integer")
	ErrPrecisionLoss    = errors.New("integer does not fit in a lua number")
	ErrTooDeep          = errors.New("table nesting too deep")
)

// maxExact is the largest magnitude a float64 holds without rounding.
const maxExact = 1 << 53

var exports = map[string]lua.LGFunction{
	"parse":     luaParse,
	"parse_all": luaParseAll,
	"encode":    luaEncode,
}

// Preload registers the module so scripts can require it.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader creates the module table.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

// ToLValue converts an expression into a Lua value.
func ToLValue(L *lua.LState, e ast.Expr) (lua.LValue, error) {
	switch v := e.(type) {
	case ast.Symbol:
		t := L.NewTable()
		t.RawSetString("symbol", lua.LString(v))
		return t, nil
	case ast.Integer:
		if v > maxExact || v < -maxExact {
			return nil, fmt.Errorf("%w: %d", ErrPrecisionLoss, int64(v))
		}
		return lua.LNumber(v), nil
	case ast.Text:
		return lua.LString(v), nil
	case ast.Boolean:
		return lua.LBool(v), nil
	case ast.List:
		list, err := toLTable(L, v)
		if err != nil {
			return nil, err
		}
		t := L.NewTable()
		t.RawSetString("list", list)
		return t, nil
	case ast.DottedPair:
		list, err := toLTable(L, v.Head)
		if err != nil {
			return nil, err
		}
		tail, err := ToLValue(L, v.Tail)
		if err != nil {
			return nil, err
		}
		t := L.NewTable()
		t.RawSetString("list", list)
		t.RawSetString("tail", tail)
		return t, nil
	}
	return lua.LNil, nil
}

func toLTable(L *lua.LState, items []ast.Expr) (*lua.LTable, error) {
	t := L.NewTable()
	for i := range items {
		lv, err := ToLValue(L, items[i])
		if err != nil {
			return nil, err
		}
		t.Append(lv)
	}
	return t, nil
}

// FromLValue converts a Lua value built with the layout of ToLValue back
// into an expression. Tables nested deeper than parser.DefaultMaxDepth,
// cyclic ones included, fail with ErrTooDeep.
func FromLValue(lv lua.LValue) (ast.Expr, error) {
	return fromLValue(lv, 0)
}

func fromLValue(lv lua.LValue, depth int) (ast.Expr, error) {
	switch v := lv.(type) {
	case lua.LString:
		return ast.Text(v), nil
	case lua.LBool:
		return ast.Boolean(v), nil
	case lua.LNumber:
		f := float64(v)
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, fmt.Errorf("%w: %v", ErrNotInteger, v)
		}
		return ast.Integer(int64(f)), nil
	case *lua.LTable:
		return fromLTable(v, depth)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, lv.Type())
}

func fromLTable(t *lua.LTable, depth int) (ast.Expr, error) {
	if s, ok := t.RawGetString("symbol").(lua.LString); ok {
		return ast.Symbol(s), nil
	}

	list, ok := t.RawGetString("list").(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: table has neither symbol nor list", ErrUnsupportedValue)
	}

	if depth >= parser.DefaultMaxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, parser.DefaultMaxDepth)
	}

	items := make([]ast.Expr, 0, list.Len())
	for i := 1; i <= list.Len(); i++ {
		item, err := fromLValue(list.RawGetInt(i), depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	tail := t.RawGetString("tail")
	if tail == lua.LNil {
		return ast.NewList(items...), nil
	}

	e, err := fromLValue(tail, depth+1)
	if err != nil {
		return nil, err
	}
	return ast.NewDottedPair(items, e), nil
}

// parse(src) returns value, rest, nil on success and nil, src, message on
// failure.
func luaParse(L *lua.LState) int {
	src := L.CheckString(1)

	e, rest, err := parser.Parse(src)
	if err != nil {
		return parseFailed(L, src, err)
	}

	lv, err := ToLValue(L, e)
	if err != nil {
		return parseFailed(L, src, err)
	}

	L.Push(lv)
	L.Push(lua.LString(rest))
	L.Push(lua.LNil)
	return 3
}

// parse_all(src) returns a list of values and nil, or nil and a message.
func luaParseAll(L *lua.LState) int {
	src := L.CheckString(1)

	exprs, err := parser.ParseAll(src)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	t, err := toLTable(L, exprs)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(t)
	L.Push(lua.LNil)
	return 2
}

func parseFailed(L *lua.LState, src string, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(src))
	L.Push(lua.LString(err.Error()))
	return 3
}

// encode(value) returns the text form of a value.
func luaEncode(L *lua.LState) int {
	e, err := FromLValue(L.CheckAny(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LString(e.String()))
	return 1
}
