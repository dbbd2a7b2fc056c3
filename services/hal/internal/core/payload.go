package core

import (
	"github.com/go-viper/mapstructure/v2"

	"cameracode-go/errcode"
)

// As[T] converts a control payload to the concrete value type T.
// A nil payload is the zero value of T. Generic maps (decoded JSON or
// config) are mapped field by field, with weak typing so JSON numbers fit
// integer fields.
func As[T any](v any) (T, errcode.Code) {
	var zero T
	switch p := v.(type) {
	case nil:
		return zero, ""
	case T:
		return p, ""
	case *T:
		if p == nil {
			return zero, ""
		}
		return *p, ""
	case map[string]any:
		var out T
		if err := Decode(p, &out); err != nil {
			return zero, errcode.InvalidPayload
		}
		return out, ""
	}
	return zero, errcode.InvalidPayload
}

// Decode maps a generic map onto a tagged struct.
func Decode(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
