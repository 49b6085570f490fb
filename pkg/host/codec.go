package host

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"ember/pkg/value"
)

// Canonical mode keeps CBOR output deterministic for a given value.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("host: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

func registerCodec(r *Registry) {
	r.Register("codec.json_encode", codecJSONEncode)
	r.Register("codec.json_decode", codecJSONDecode)
	r.Register("codec.cbor_encode", codecCBOREncode)
	r.Register("codec.cbor_decode", codecCBORDecode)
}

func codecJSONEncode(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	data, err := json.Marshal(value.ToNative(args[0]))
	if err != nil {
		return value.Errorf("json encode failed: %s", err)
	}
	return &value.String{Value: string(data)}
}

func codecJSONDecode(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	text, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return value.Errorf("json decode failed: %s", err)
	}
	return value.FromNative(decoded)
}

func codecCBOREncode(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	data, err := cborEncMode.Marshal(value.ToNative(args[0]))
	if err != nil {
		return value.Errorf("cbor encode failed: %s", err)
	}
	return &value.Native{Value: data}
}

func codecCBORDecode(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	var data []byte
	switch v := args[0].(type) {
	case *value.Native:
		b, ok := v.Value.([]byte)
		if !ok {
			return value.Errorf("argument 1 must be cbor bytes")
		}
		data = b
	case *value.String:
		data = []byte(v.Value)
	default:
		return value.Errorf("argument 1 must be cbor bytes, got %s", args[0].Kind())
	}
	var decoded any
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		return value.Errorf("cbor decode failed: %s", err)
	}
	return value.FromNative(decoded)
}
