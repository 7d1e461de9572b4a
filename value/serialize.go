package value

import (
	"encoding/json"
	"fmt"

	"github.com/uyouii/measurement-stats/common"
)

const (
	KeyValue          = "value"
	KeyUncertainty    = "uncertainty"
	KeyRaw            = "raw"
	KeyRawUncertainty = "raw_uncertainty"
)

// ToDict keeps only the raw state.
func (v ValueUncertainty) ToDict() map[string]float64 {
	return map[string]float64{
		KeyRaw:            v.raw,
		KeyRawUncertainty: v.rawUncertainty,
	}
}

// Serialize emits both the rounded and the raw forms.
func (v ValueUncertainty) Serialize() map[string]float64 {
	return map[string]float64{
		KeyValue:          v.Value(),
		KeyUncertainty:    v.Uncertainty(),
		KeyRaw:            v.raw,
		KeyRawUncertainty: v.rawUncertainty,
	}
}

// FromDict restores v from either the raw keys or the display keys, raw
// wins when both are present.
func (v *ValueUncertainty) FromDict(source map[string]float64) error {
	raw, hasRaw := source[KeyRaw]
	rawUnc, hasRawUnc := source[KeyRawUncertainty]
	if hasRaw && hasRawUnc {
		v.Update(raw, rawUnc)
		return nil
	}

	val, hasValue := source[KeyValue]
	unc, hasUnc := source[KeyUncertainty]
	if hasValue && hasUnc {
		v.Update(val, unc)
		return nil
	}

	return fmt.Errorf("value: need %s/%s or %s/%s keys: %w",
		KeyRaw, KeyRawUncertainty, KeyValue, KeyUncertainty, common.ErrorInvalidValue)
}

func FromDict(source map[string]float64) (ValueUncertainty, error) {
	var v ValueUncertainty
	err := v.FromDict(source)
	return v, err
}

func (v ValueUncertainty) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Serialize())
}

func (v *ValueUncertainty) UnmarshalJSON(data []byte) error {
	source := map[string]float64{}
	if err := json.Unmarshal(data, &source); err != nil {
		return err
	}
	return v.FromDict(source)
}
