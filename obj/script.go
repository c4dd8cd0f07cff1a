package obj

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cubescroller/prefabs"
)

// scriptRuntime is one compiled enemy script. The script defines
// update(engine, state); state is a map that survives between ticks.
type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

const scriptDispatch = `
if __phase == "update" {
	update(__engine, __state)
}
`

func compileScript(path string) (*scriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("obj: empty script path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("obj: load script %s: %w", path, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile script %s: %w", path, err)
	}

	rt := &scriptRuntime{
		path:     path,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	// A dry run catches scripts that fail at top level before the first tick.
	if err := rt.run("init", nil); err != nil {
		return nil, fmt.Errorf("obj: run script %s: %w", path, err)
	}
	if !compiled.IsDefined("update") {
		return nil, fmt.Errorf("obj: script %s does not define update", path)
	}
	return rt, nil
}

func (rt *scriptRuntime) run(phase string, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Int:
		return float64(v.Value), true
	case *tengo.Float:
		return v.Value, true
	case *tengo.Bool:
		if v.IsFalsy() {
			return 0, true
		}
		return 1, true
	}
	return 0, false
}
