package train

import (
	"bytes"
	"encoding/gob"
	"reflect"

	"github.com/pkg/errors"
)

// HyperParams is an attribute bag recording a model's hyperparameters
// by name. Models populate it once at construction with SaveHyperParams
// so that the settings that produced a run travel with its checkpoints.
type HyperParams struct {
	attrs map[string]interface{}
}

// SaveHyperParams records the exported fields of the struct v (or
// pointer to struct) into a HyperParams bag, skipping any field name
// listed in ignore. Only bool, integer, float, and string fields are
// recorded; fields of other kinds are silently skipped, matching the
// intent that hyperparameters are plain scalar settings.
func SaveHyperParams(v interface{}, ignore ...string) (HyperParams, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return HyperParams{}, errors.Errorf("expected struct or pointer to struct, got %T", v)
	}

	skip := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		skip[name] = struct{}{}
	}

	hp := HyperParams{attrs: make(map[string]interface{})}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if _, ok := skip[field.Name]; ok {
			continue
		}

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.Bool:
			hp.attrs[field.Name] = fv.Bool()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			hp.attrs[field.Name] = fv.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			hp.attrs[field.Name] = int64(fv.Uint())
		case reflect.Float32, reflect.Float64:
			hp.attrs[field.Name] = fv.Float()
		case reflect.String:
			hp.attrs[field.Name] = fv.String()
		}
	}

	return hp, nil
}

// Len returns the number of recorded hyperparameters.
func (hp HyperParams) Len() int {
	return len(hp.attrs)
}

// Has reports whether name was recorded.
func (hp HyperParams) Has(name string) bool {
	_, ok := hp.attrs[name]
	return ok
}

// Float returns the named float hyperparameter.
func (hp HyperParams) Float(name string) (float64, bool) {
	v, ok := hp.attrs[name].(float64)
	return v, ok
}

// Int returns the named integer hyperparameter.
func (hp HyperParams) Int(name string) (int64, bool) {
	v, ok := hp.attrs[name].(int64)
	return v, ok
}

// Bool returns the named boolean hyperparameter.
func (hp HyperParams) Bool(name string) (bool, bool) {
	v, ok := hp.attrs[name].(bool)
	return v, ok
}

// String returns the named string hyperparameter.
func (hp HyperParams) String(name string) (string, bool) {
	v, ok := hp.attrs[name].(string)
	return v, ok
}

// GobEncode implements gob.GobEncoder.
func (hp HyperParams) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(hp.attrs); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (hp *HyperParams) GobDecode(buf []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(buf))
	return dec.Decode(&hp.attrs)
}
