package codec

import "time"

// ValueType discriminates the Go type a feature's default and rule values
// must carry on the wire.
type ValueType string

const (
	TypeBool   ValueType = "bool"
	TypeString ValueType = "string"
	TypeInt    ValueType = "int"
	TypeFloat  ValueType = "float"
)

// wireDocument is the top-level wire model shared by the JSON and YAML
// codecs. Field tags carry both formats.
type wireDocument struct {
	Metadata wireMetadata  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Features []wireFeature `json:"features" yaml:"features"`
}

type wireMetadata struct {
	ID          string    `json:"id,omitempty" yaml:"id,omitempty"`
	Version     string    `json:"version,omitempty" yaml:"version,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
}

type wireFeature struct {
	Namespace string     `json:"namespace" yaml:"namespace"`
	Key       string     `json:"key" yaml:"key"`
	Type      ValueType  `json:"type" yaml:"type"`
	Default   any        `json:"default" yaml:"default"`
	Active    *bool      `json:"active,omitempty" yaml:"active,omitempty"`
	Salt      string     `json:"salt,omitempty" yaml:"salt,omitempty"`
	Rules     []wireRule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

type wireRule struct {
	Value     any            `json:"value" yaml:"value"`
	Rollout   *float64       `json:"rollout,omitempty" yaml:"rollout,omitempty"`
	Note      string         `json:"note,omitempty" yaml:"note,omitempty"`
	Allowlist []string       `json:"allowlist,omitempty" yaml:"allowlist,omitempty"`
	Targeting *wireTargeting `json:"targeting,omitempty" yaml:"targeting,omitempty"`
}

type wireTargeting struct {
	Locales   []string            `json:"locales,omitempty" yaml:"locales,omitempty"`
	Platforms []string            `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	Versions  *wireVersions       `json:"versions,omitempty" yaml:"versions,omitempty"`
	Axes      map[string][]string `json:"axes,omitempty" yaml:"axes,omitempty"`
}

// wireVersions expresses a version range. An empty Min or Max leaves that
// side unbounded; both empty is rejected (omit the versions block instead).
type wireVersions struct {
	Min string `json:"min,omitempty" yaml:"min,omitempty"`
	Max string `json:"max,omitempty" yaml:"max,omitempty"`
}
