package transformations

import (
	"fmt"

	"valuefmt/values"
)

// Config represents a transformation configuration from YAML
type Config struct {
	Type   string `yaml:"type"`
	Target string `yaml:"target"`
	Value  string `yaml:"value"`
}

// BuildTransformation creates a Transformation from a config
func BuildTransformation(cfg Config) (Transformation, Target, error) {
	var target Target
	switch cfg.Target {
	case "", string(TargetOutput):
		target = TargetOutput
	case string(TargetName):
		target = TargetName
	default:
		return nil, TargetOutput, fmt.Errorf("unknown transformation target %q for %s", cfg.Target, cfg.Type)
	}

	switch cfg.Type {
	case "format":
		return &Format{}, target, nil
	case "prefix":
		return &Prefix{Value: cfg.Value}, target, nil
	case "suffix":
		return &Suffix{Value: cfg.Value}, target, nil
	case "upper":
		return &Upper{}, target, nil
	case "lower":
		return &Lower{}, target, nil
	case "trim":
		return &Trim{}, target, nil
	case "base64_decode":
		return &Base64Decode{}, target, nil
	case "base64_encode":
		return &Base64Encode{}, target, nil
	default:
		return nil, target, fmt.Errorf("unknown transformation type: %s", cfg.Type)
	}
}

// ApplyTransformations applies a list of transformations to a name and an output line
func ApplyTransformations(name, output string, configs []Config) (string, string, error) {
	for _, cfg := range configs {
		t, target, err := BuildTransformation(cfg)
		if err != nil {
			return name, output, err
		}

		switch target {
		case TargetName:
			name = t.Transform(name)
		case TargetOutput:
			output = t.Transform(output)
		}
	}

	return name, output, nil
}

// Describe renders v after running the name transformations, then runs the
// output transformations over the rendered line.
func Describe(v values.NamedValue, configs []Config) (string, error) {
	var nameConfigs, outputConfigs []Config
	for _, cfg := range configs {
		if cfg.Target == string(TargetName) {
			nameConfigs = append(nameConfigs, cfg)
		} else {
			outputConfigs = append(outputConfigs, cfg)
		}
	}

	name, _, err := ApplyTransformations(v.Name(), "", nameConfigs)
	if err != nil {
		return "", err
	}

	_, line, err := ApplyTransformations(name, values.New(name, v.Value()).Describe(), outputConfigs)
	if err != nil {
		return "", err
	}
	return line, nil
}
