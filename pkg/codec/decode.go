package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/flagkit/flagkit/pkg/axis"
	"github.com/flagkit/flagkit/pkg/feature"
	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/snapshot"
	"github.com/flagkit/flagkit/pkg/target"
	"github.com/flagkit/flagkit/pkg/version"
)

// Decoder turns wire documents into configurations. The zero-argument
// decoder validates structure and types only; attach a catalog to also
// validate axis references.
type Decoder struct {
	catalog *axis.Catalog
}

// Option customizes a Decoder.
type Option func(*Decoder)

// WithCatalog makes the decoder reject targeting blocks that reference
// axes or axis values the catalog does not know.
func WithCatalog(c *axis.Catalog) Option {
	return func(d *Decoder) { d.catalog = c }
}

// NewDecoder builds a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeJSON reads a JSON document from r and builds a configuration.
// Unknown fields are rejected.
func (d *Decoder) DecodeJSON(r io.Reader) (*snapshot.Configuration, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	dec.UseNumber()

	var doc wireDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeErrorf("", "malformed JSON: %v", err)
	}
	return d.build(doc)
}

// DecodeYAML reads a YAML document from r and builds a configuration.
// Unknown fields are rejected.
func (d *Decoder) DecodeYAML(r io.Reader) (*snapshot.Configuration, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc wireDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeErrorf("", "malformed YAML: %v", err)
	}
	return d.build(doc)
}

func (d *Decoder) build(doc wireDocument) (*snapshot.Configuration, error) {
	meta, err := buildMetadata(doc.Metadata)
	if err != nil {
		return nil, err
	}

	// An empty feature list is a valid document: a configuration may start
	// out featureless, and encoded empty configurations must decode.
	seen := make(map[identity.FeatureIdentity]int, len(doc.Features))
	defs := make([]*feature.Definition, 0, len(doc.Features))
	for i, wf := range doc.Features {
		path := fmt.Sprintf("features[%d]", i)

		def, err := d.buildFeature(wf, path)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[def.Identity()]; dup {
			return nil, decodeErrorf(path, "identity %s already declared at features[%d]", def.Identity(), first)
		}
		seen[def.Identity()] = i
		defs = append(defs, def)
	}

	return snapshot.New(meta, defs...)
}

func buildMetadata(wm wireMetadata) (snapshot.Metadata, error) {
	meta := snapshot.Metadata{
		Version:     wm.Version,
		GeneratedAt: wm.GeneratedAt,
		Source:      wm.Source,
	}
	if wm.ID != "" {
		id, err := uuid.Parse(wm.ID)
		if err != nil {
			return snapshot.Metadata{}, decodeErrorf("metadata.id", "not a UUID: %v", err)
		}
		meta.ID = id
	}
	return meta, nil
}

func (d *Decoder) buildFeature(wf wireFeature, path string) (*feature.Definition, error) {
	id, err := identity.NewFeatureIdentity(wf.Namespace, wf.Key)
	if err != nil {
		return nil, decodeErrorf(path, "%v", err)
	}

	switch wf.Type {
	case TypeBool, TypeString, TypeInt, TypeFloat:
	case "":
		return nil, decodeErrorf(path+".type", "missing type discriminator")
	default:
		return nil, decodeErrorf(path+".type", "unknown type %q", wf.Type)
	}

	def, err := coerceValue(wf.Type, wf.Default, path+".default")
	if err != nil {
		return nil, err
	}

	opts := make([]feature.Option, 0, 3)
	if wf.Active != nil && !*wf.Active {
		opts = append(opts, feature.Inactive())
	}
	if wf.Salt != "" {
		opts = append(opts, feature.WithSalt(wf.Salt))
	}

	rules := make([]feature.Rule, 0, len(wf.Rules))
	for j, wr := range wf.Rules {
		rule, err := d.buildRule(wf.Type, wr, fmt.Sprintf("%s.rules[%d]", path, j))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if len(rules) > 0 {
		opts = append(opts, feature.WithRules(rules...))
	}

	built, err := feature.New(id, def, opts...)
	if err != nil {
		return nil, decodeErrorf(path, "%v", err)
	}
	return built, nil
}

func (d *Decoder) buildRule(t ValueType, wr wireRule, path string) (feature.Rule, error) {
	value, err := coerceValue(t, wr.Value, path+".value")
	if err != nil {
		return feature.Rule{}, err
	}

	opts := make([]feature.RuleOption, 0, 4)
	if wr.Rollout != nil {
		if *wr.Rollout < 0 || *wr.Rollout > 100 {
			return feature.Rule{}, decodeErrorf(path+".rollout", "rollout %v outside [0, 100]", *wr.Rollout)
		}
		opts = append(opts, feature.WithRollout(*wr.Rollout))
	}
	if wr.Note != "" {
		opts = append(opts, feature.WithNote(wr.Note))
	}
	if len(wr.Allowlist) > 0 {
		ids := make([]identity.StableID, 0, len(wr.Allowlist))
		for k, raw := range wr.Allowlist {
			id, err := identity.ParseStableID(raw)
			if err != nil {
				return feature.Rule{}, decodeErrorf(fmt.Sprintf("%s.allowlist[%d]", path, k), "%v", err)
			}
			ids = append(ids, id)
		}
		opts = append(opts, feature.WithAllowlist(ids...))
	}
	if wr.Targeting != nil {
		targeting, err := d.buildTargeting(*wr.Targeting, path+".targeting")
		if err != nil {
			return feature.Rule{}, err
		}
		opts = append(opts, feature.WithTargeting(targeting))
	}

	rule, err := feature.NewRule(value, opts...)
	if err != nil {
		return feature.Rule{}, decodeErrorf(path, "%v", err)
	}
	return rule, nil
}

func (d *Decoder) buildTargeting(wt wireTargeting, path string) (target.Targeting, error) {
	var tg target.Targeting

	for i, raw := range wt.Locales {
		tag, err := language.Parse(raw)
		if err != nil {
			return target.Targeting{}, decodeErrorf(fmt.Sprintf("%s.locales[%d]", path, i), "invalid locale %q: %v", raw, err)
		}
		tg.Locales = append(tg.Locales, tag)
	}

	for i, raw := range wt.Platforms {
		if raw == "" {
			return target.Targeting{}, decodeErrorf(fmt.Sprintf("%s.platforms[%d]", path, i), "blank platform")
		}
		tg.Platforms = append(tg.Platforms, target.Platform(raw))
	}

	if wt.Versions != nil {
		rng, err := buildRange(*wt.Versions, path+".versions")
		if err != nil {
			return target.Targeting{}, err
		}
		tg.Versions = rng
	}

	if len(wt.Axes) > 0 {
		for axisID, valueIDs := range wt.Axes {
			axisPath := fmt.Sprintf("%s.axes[%s]", path, axisID)
			if axisID == "" {
				return target.Targeting{}, decodeErrorf(axisPath, "blank axis id")
			}
			if len(valueIDs) == 0 {
				return target.Targeting{}, decodeErrorf(axisPath, "empty value list")
			}
			if err := d.checkAxis(axisID, valueIDs, axisPath); err != nil {
				return target.Targeting{}, err
			}
		}
		tg.Axes = target.CopyAxes(wt.Axes)
	}

	return tg, nil
}

func (d *Decoder) checkAxis(axisID string, valueIDs []string, path string) error {
	if d.catalog == nil {
		return nil
	}
	ax, ok := d.catalog.Axis(axisID)
	if !ok {
		return decodeErrorf(path, "axis %q not in catalog", axisID)
	}
	for _, valueID := range valueIDs {
		if !ax.Contains(valueID) {
			return decodeErrorf(path, "axis %q has no value %q", axisID, valueID)
		}
	}
	return nil
}

func buildRange(wv wireVersions, path string) (version.Range, error) {
	switch {
	case wv.Min == "" && wv.Max == "":
		return nil, decodeErrorf(path, "empty versions block; omit it for an unbounded range")
	case wv.Max == "":
		min, err := version.Parse(wv.Min)
		if err != nil {
			return nil, decodeErrorf(path+".min", "%v", err)
		}
		return version.AtLeast{Min: min}, nil
	case wv.Min == "":
		max, err := version.Parse(wv.Max)
		if err != nil {
			return nil, decodeErrorf(path+".max", "%v", err)
		}
		return version.AtMost{Max: max}, nil
	default:
		min, err := version.Parse(wv.Min)
		if err != nil {
			return nil, decodeErrorf(path+".min", "%v", err)
		}
		max, err := version.Parse(wv.Max)
		if err != nil {
			return nil, decodeErrorf(path+".max", "%v", err)
		}
		rng, err := version.NewBetween(min, max)
		if err != nil {
			return nil, decodeErrorf(path, "%v", err)
		}
		return rng, nil
	}
}

// coerceValue checks raw against the declared type and normalizes numeric
// representations: ints become int64, floats become float64, regardless of
// which codec produced them.
func coerceValue(t ValueType, raw any, path string) (any, error) {
	if raw == nil {
		return nil, decodeErrorf(path, "missing value")
	}

	switch t {
	case TypeBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case TypeString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case TypeInt:
		switch v := raw.(type) {
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, decodeErrorf(path, "%v is not an integer", v)
			}
			return n, nil
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			if v != math.Trunc(v) {
				return nil, decodeErrorf(path, "%v is not an integer", v)
			}
			return int64(v), nil
		}
	case TypeFloat:
		switch v := raw.(type) {
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, decodeErrorf(path, "%v is not a number", v)
			}
			return f, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		}
	}

	return nil, decodeErrorf(path, "value %v does not satisfy type %q", raw, t)
}
