package host

import (
	"testing"

	"ember/pkg/value"
)

func sample() *value.Map {
	return &value.Map{Pairs: map[string]value.Value{
		"name":  &value.String{Value: "ember"},
		"count": &value.Integer{Value: 3},
		"ratio": &value.Float{Value: 0.5},
		"on":    value.TRUE,
		"tags":  &value.Array{Elements: []value.Value{&value.String{Value: "a"}, &value.String{Value: "b"}}},
	}}
}

func checkSample(t *testing.T, v value.Value) {
	t.Helper()
	m, err := value.AsMap(v)
	if err != nil {
		t.Fatalf("decoded %s, want map: %s", v.Inspect(), err)
	}
	if name, _ := m.Get("name"); name.(*value.String).Value != "ember" {
		t.Errorf("name = %s", name.Inspect())
	}
	if count, _ := m.Get("count"); count.(*value.Integer).Value != 3 {
		t.Errorf("count = %s", count.Inspect())
	}
	if ratio, _ := m.Get("ratio"); ratio.(*value.Float).Value != 0.5 {
		t.Errorf("ratio = %s", ratio.Inspect())
	}
	if on, _ := m.Get("on"); on != value.TRUE {
		t.Errorf("on = %s", on.Inspect())
	}
	tags, _ := m.Get("tags")
	arr, err := value.AsArray(tags)
	if err != nil || len(arr.Elements) != 2 {
		t.Errorf("tags = %s", tags.Inspect())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	encoded := codecJSONEncode([]value.Value{sample()})
	text, ok := encoded.(*value.String)
	if !ok {
		t.Fatalf("json_encode = %s, want string", encoded.Inspect())
	}

	checkSample(t, codecJSONDecode([]value.Value{text}))
}

func TestCBORRoundTrip(t *testing.T) {
	encoded := codecCBOREncode([]value.Value{sample()})
	blob, ok := encoded.(*value.Native)
	if !ok {
		t.Fatalf("cbor_encode = %s, want native bytes", encoded.Inspect())
	}
	if _, ok := blob.Value.([]byte); !ok {
		t.Fatalf("cbor_encode wrapped %T, want []byte", blob.Value)
	}

	checkSample(t, codecCBORDecode([]value.Value{blob}))
}

func TestCBORDeterministic(t *testing.T) {
	// canonical mode: same value, same bytes
	a := codecCBOREncode([]value.Value{sample()}).(*value.Native).Value.([]byte)
	b := codecCBOREncode([]value.Value{sample()}).(*value.Native).Value.([]byte)
	if string(a) != string(b) {
		t.Error("canonical encoding is not deterministic")
	}
}

func TestCodecBadInput(t *testing.T) {
	tests := []struct {
		name   string
		result value.Value
	}{
		{"json_decode non-string", codecJSONDecode([]value.Value{value.TRUE})},
		{"json_decode garbage", codecJSONDecode([]value.Value{&value.String{Value: "{nope"}})},
		{"cbor_decode wrong kind", codecCBORDecode([]value.Value{value.TRUE})},
		{"cbor_decode garbage", codecCBORDecode([]value.Value{&value.Native{Value: []byte{0xff, 0x00}}})},
	}

	for _, tt := range tests {
		if tt.result.Kind() != value.KindError {
			t.Errorf("%s: result = %s, want error value", tt.name, tt.result.Inspect())
		}
	}
}
