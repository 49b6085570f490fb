package host

import (
	"strings"
	"testing"
	"time"

	"ember/pkg/value"
)

func TestTimeNowMS(t *testing.T) {
	before := time.Now().UnixMilli()
	result := timeNowMS(nil)
	after := time.Now().UnixMilli()

	n, ok := result.(*value.Integer)
	if !ok {
		t.Fatalf("result = %s, want integer", result.Inspect())
	}
	if n.Value < before || n.Value > after {
		t.Errorf("now_ms = %d outside [%d, %d]", n.Value, before, after)
	}
}

func TestTimeSinceS(t *testing.T) {
	start := time.Now().UnixMilli() - 1500

	result := timeSinceS([]value.Value{&value.Integer{Value: start}})
	s, ok := result.(*value.String)
	if !ok {
		t.Fatalf("result = %s, want string", result.Inspect())
	}
	if !strings.HasPrefix(s.Value, "1.5") {
		t.Errorf("since_s = %q, want ~1.5xx", s.Value)
	}
	if len(strings.SplitN(s.Value, ".", 2)[1]) != 3 {
		t.Errorf("since_s = %q, want 3 decimal places", s.Value)
	}

	result = timeSinceS([]value.Value{&value.Integer{Value: start}, &value.Integer{Value: 1}})
	s, ok = result.(*value.String)
	if !ok {
		t.Fatalf("result = %s, want string", result.Inspect())
	}
	if len(strings.SplitN(s.Value, ".", 2)[1]) != 1 {
		t.Errorf("since_s with precision 1 = %q, want 1 decimal place", s.Value)
	}
}

func TestTimeBadArguments(t *testing.T) {
	tests := []struct {
		name   string
		result value.Value
	}{
		{"now_ms with arg", timeNowMS([]value.Value{value.TRUE})},
		{"since_s no args", timeSinceS(nil)},
		{"since_s non-integer", timeSinceS([]value.Value{value.TRUE})},
		{"sleep_ms non-integer", timeSleepMS([]value.Value{value.TRUE})},
		{"sleep_ms negative", timeSleepMS([]value.Value{&value.Integer{Value: -1}})},
	}

	for _, tt := range tests {
		if tt.result.Kind() != value.KindError {
			t.Errorf("%s: result = %s, want error value", tt.name, tt.result.Inspect())
		}
	}
}

func TestTimeSleepMS(t *testing.T) {
	start := time.Now()
	result := timeSleepMS([]value.Value{&value.Integer{Value: 10}})
	if result != value.NONE {
		t.Fatalf("result = %s, want none", result.Inspect())
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("slept %s, want at least 10ms", elapsed)
	}
}
