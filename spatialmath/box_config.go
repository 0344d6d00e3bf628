package spatialmath

import (
	"encoding/json"

	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// AxesConfig holds an explicit box basis.
type AxesConfig struct {
	X r3.Vector `json:"x"`
	Y r3.Vector `json:"y"`
	Z r3.Vector `json:"z"`
}

// BoxConfig specifies the format of an oriented box when serialized. A box is described either by
// its pitch and yaw, or by an explicit basis in Axes, which takes precedence.
type BoxConfig struct {
	Label  string      `json:"label,omitempty"`
	Center r3.Vector   `json:"center"`
	Dims   r3.Vector   `json:"dims"`
	Pitch  float64     `json:"pitch,omitempty"`
	Yaw    float64     `json:"yaw,omitempty"`
	Axes   *AxesConfig `json:"axes,omitempty"`
}

// NewBoxConfig returns the config describing the given box.
func NewBoxConfig(b *OrientedBox) (*BoxConfig, error) {
	if b == nil {
		return nil, errors.New("cannot make a config from a nil box")
	}
	config := &BoxConfig{
		Label:  b.label,
		Center: b.center,
		Dims:   b.extent.Mul(2),
	}
	if b.polar {
		config.Pitch = b.pitch
		config.Yaw = b.yaw
	} else {
		config.Axes = &AxesConfig{X: b.axisX, Y: b.axisY, Z: b.axisZ}
	}
	return config, nil
}

// ParseBoxConfig decodes a BoxConfig from JSON.
func ParseBoxConfig(data []byte) (*BoxConfig, error) {
	var config BoxConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "cannot decode box config")
	}
	return &config, nil
}

// DecodeBoxConfig decodes a BoxConfig from loosely typed attributes, such as a section of a larger
// JSON or YAML document. Unknown keys are an error.
func DecodeBoxConfig(attributes map[string]interface{}) (*BoxConfig, error) {
	var config BoxConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &config,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode box config")
	}
	return &config, nil
}

// BoxConfigSchema returns the JSON schema describing a BoxConfig.
func BoxConfigSchema() ([]byte, error) {
	return json.MarshalIndent(jsonschema.Reflect(&BoxConfig{}), "", "  ")
}

// ParseConfig builds the box described by the config.
func (config *BoxConfig) ParseConfig() (*OrientedBox, error) {
	var (
		b   *OrientedBox
		err error
	)
	if config.Axes != nil {
		b, err = NewOrientedBoxFromAxes(config.Center, config.Dims.Mul(0.5), config.Axes.X, config.Axes.Y, config.Axes.Z)
	} else {
		b, err = NewOrientedBox(config.Center, config.Dims, config.Pitch, config.Yaw)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config for box %q", config.Label)
	}
	return b.WithLabel(config.Label), nil
}
