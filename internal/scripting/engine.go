package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/geom"
)

// behaviorsTable is the global scripts register their tick functions in.
const behaviorsTable = "behaviors"

// apiVersion is published as API_VERSION. It changes when the tick table
// passed to behaviors or the result they return changes shape.
const apiVersion = 1

// Engine wraps a single gopher-lua VM running entity behaviors.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every script in scriptsDir.
// A missing directory leaves the engine without behaviors.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(apiVersion))
	vm.SetGlobal(behaviorsTable, vm.NewTable())

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory, in name order.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua in the engine's VM.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// SetView publishes the scene bounds to scripts as the global VIEW table.
func (e *Engine) SetView(view geom.Rect) {
	t := e.vm.NewTable()
	t.RawSetString("x", lua.LNumber(view.X))
	t.RawSetString("y", lua.LNumber(view.Y))
	t.RawSetString("w", lua.LNumber(view.W))
	t.RawSetString("h", lua.LNumber(view.H))
	e.vm.SetGlobal("VIEW", t)
}

// Behaviors returns the names registered in the behaviors table, sorted.
func (e *Engine) Behaviors() []string {
	t, ok := e.vm.GetGlobal(behaviorsTable).(*lua.LTable)
	if !ok {
		return nil
	}
	var names []string
	t.ForEach(func(k, v lua.LValue) {
		name, ok := k.(lua.LString)
		if !ok || v.Type() != lua.LTFunction {
			return
		}
		names = append(names, string(name))
	})
	sort.Strings(names)
	return names
}

// TickResult is what a behavior asks for after one tick.
type TickResult struct {
	X      int
	Y      int
	Remove bool
}

// OnTick calls behaviors[fn] with the entity's state and returns where the
// entity should be. Fields the script leaves out keep their current value.
func (e *Engine) OnTick(fn string, ent *ecs.Entity, dt time.Duration) (TickResult, error) {
	current := TickResult{X: ent.Position.X, Y: ent.Position.Y}

	var f lua.LValue = lua.LNil
	if t, ok := e.vm.GetGlobal(behaviorsTable).(*lua.LTable); ok {
		f = t.RawGetString(fn)
	}
	if f.Type() != lua.LTFunction {
		return current, fmt.Errorf("lua behavior %q not found", fn)
	}

	t := e.vm.NewTable()
	t.RawSetString("id", lua.LNumber(ent.ID))
	t.RawSetString("x", lua.LNumber(ent.Position.X))
	t.RawSetString("y", lua.LNumber(ent.Position.Y))
	t.RawSetString("w", lua.LNumber(ent.Position.W))
	t.RawSetString("h", lua.LNumber(ent.Position.H))
	t.RawSetString("dt_ms", lua.LNumber(dt.Milliseconds()))

	if err := e.vm.CallByParam(lua.P{
		Fn:      f,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		return current, fmt.Errorf("lua behavior %q: %w", fn, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return current, fmt.Errorf("lua behavior %q returned %s, want table", fn, result.Type())
	}

	if v, ok := rt.RawGetString("x").(lua.LNumber); ok {
		current.X = int(v)
	}
	if v, ok := rt.RawGetString("y").(lua.LNumber); ok {
		current.Y = int(v)
	}
	current.Remove = lua.LVAsBool(rt.RawGetString("remove"))
	return current, nil
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
