package host

import (
	"os"

	"github.com/joho/godotenv"

	"ember/pkg/value"
)

func registerEnv(r *Registry) {
	r.Register("env.load", envLoad)
	r.Register("env.get", envGet)
	r.Register("env.set", envSet)
}

// envLoad reads a dotenv file into the process environment. With no
// argument it loads ".env" from the working directory.
func envLoad(args []value.Value) value.Value {
	var paths []string
	for i := range args {
		path, errv := stringArg(args, i)
		if errv != nil {
			return errv
		}
		paths = append(paths, path)
	}
	if err := godotenv.Load(paths...); err != nil {
		return value.Errorf("failed to load env file: %s", err)
	}
	return value.TRUE
}

// envGet reads a variable, falling back to an optional default when the
// variable is unset or empty.
func envGet(args []value.Value) value.Value {
	if len(args) < 1 || len(args) > 2 {
		return value.Errorf("wrong number of arguments: expected 1 or 2")
	}
	name, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	if v := os.Getenv(name); v != "" {
		return &value.String{Value: v}
	}
	if len(args) == 2 {
		return args[1]
	}
	return value.NONE
}

func envSet(args []value.Value) value.Value {
	if len(args) != 2 {
		return wrongArgs(len(args), 2)
	}
	name, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	val, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}
	if err := os.Setenv(name, val); err != nil {
		return value.Errorf("failed to set %s: %s", name, err)
	}
	return value.TRUE
}
