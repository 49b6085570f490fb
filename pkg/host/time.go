package host

import (
	"fmt"
	"time"

	"ember/pkg/value"
)

func registerTime(r *Registry) {
	r.Register("time.now_ms", timeNowMS)
	r.Register("time.since_s", timeSinceS)
	r.Register("time.sleep_ms", timeSleepMS)
}

func timeNowMS(args []value.Value) value.Value {
	if len(args) != 0 {
		return wrongArgs(len(args), 0)
	}
	return &value.Integer{Value: time.Now().UnixMilli()}
}

// timeSinceS formats the seconds elapsed since a millisecond timestamp.
// An optional second argument picks the number of decimal places.
func timeSinceS(args []value.Value) value.Value {
	if len(args) < 1 || len(args) > 2 {
		return value.Errorf("wrong number of arguments: expected 1 or 2")
	}
	start, errv := intArg(args, 0)
	if errv != nil {
		return errv
	}

	precision := int64(3)
	if len(args) == 2 {
		p, errv := intArg(args, 1)
		if errv != nil {
			return errv
		}
		precision = p
	}

	diff := time.Now().UnixMilli() - start
	formatStr := fmt.Sprintf("%%.%df", precision)
	return &value.String{Value: fmt.Sprintf(formatStr, float64(diff)/1000.0)}
}

func timeSleepMS(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	n, errv := intArg(args, 0)
	if errv != nil {
		return errv
	}
	if n < 0 {
		return value.Errorf("sleep duration must be non-negative, got %d", n)
	}
	time.Sleep(time.Duration(n) * time.Millisecond)
	return value.NONE
}
