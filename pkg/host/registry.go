// Package host provides native functions a bytecode program can reach
// through CallNative: clocks, environment access, password and token
// handling, mail, websockets, value codecs and a persistent store. Native
// functions have no error channel, so every failure here is folded into a
// *value.Error result.
package host

import (
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"ember/pkg/bytecode"
	"ember/pkg/value"
)

var log = commonlog.GetLogger("host")

// Registry maps dotted names like "auth.sign_token" to native functions.
type Registry struct {
	fns map[string]bytecode.NativeFn
}

func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]bytecode.NativeFn)}
}

// Register binds name to fn, replacing any previous binding.
func (r *Registry) Register(name string, fn bytecode.NativeFn) {
	r.fns[name] = fn
}

// Lookup resolves a native function by its full dotted name.
func (r *Registry) Lookup(name string) (bytecode.NativeFn, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Module materializes the functions registered under "name." as a module
// value, suitable for a function's slot-0 module reference or as an
// operand.
func (r *Registry) Module(name string) *value.Module {
	members := make(map[string]value.Value)
	prefix := name + "."
	for full, fn := range r.fns {
		if strings.HasPrefix(full, prefix) {
			members[strings.TrimPrefix(full, prefix)] = fn
		}
	}
	return &value.Module{Name: name, Members: members}
}

// DefaultRegistry wires up every host module. cfg may be nil, in which case
// mail and store settings come from the environment on first use.
func DefaultRegistry(cfg *Config) *Registry {
	r := NewRegistry()
	registerTime(r)
	registerEnv(r)
	registerAuth(r)
	registerCodec(r)
	registerWS(r)
	registerMail(r, cfg)
	registerStore(r)
	return r
}

func wrongArgs(got, want int) *value.Error {
	return value.Errorf("wrong number of arguments. got=%d, want=%d", got, want)
}

func stringArg(args []value.Value, i int) (string, *value.Error) {
	s, ok := args[i].(*value.String)
	if !ok {
		return "", value.Errorf("argument %d must be a string, got %s", i+1, args[i].Kind())
	}
	return s.Value, nil
}

func intArg(args []value.Value, i int) (int64, *value.Error) {
	n, ok := args[i].(*value.Integer)
	if !ok {
		return 0, value.Errorf("argument %d must be an integer, got %s", i+1, args[i].Kind())
	}
	return n.Value, nil
}

func mapArg(args []value.Value, i int) (*value.Map, *value.Error) {
	m, ok := args[i].(*value.Map)
	if !ok {
		return nil, value.Errorf("argument %d must be a map, got %s", i+1, args[i].Kind())
	}
	return m, nil
}
