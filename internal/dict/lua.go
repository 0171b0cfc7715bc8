package dict

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LoadLua runs a dictionary script and merges its definitions into d.
// The script is executed once at startup with a single function in scope:
//
//	define("EMS", "mes")
//
// Later define calls for the same canonical key overwrite earlier ones, in
// script order. The Lua state is discarded when the script returns, so
// scripts cannot alter the dictionary afterwards.
func (d *Dictionary) LoadLua(path string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: false})
	defer L.Close()

	L.SetGlobal("define", L.NewFunction(func(L *lua.LState) int {
		letters := L.CheckString(1)
		word := L.CheckString(2)
		if _, err := d.Define(letters, word); err != nil {
			L.RaiseError("define: %v", err)
		}
		return 0
	}))

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("dictionary script %s: %w", path, err)
	}
	return nil
}
