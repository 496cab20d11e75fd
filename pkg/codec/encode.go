package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/flagkit/flagkit/pkg/feature"
	"github.com/flagkit/flagkit/pkg/snapshot"
	"github.com/flagkit/flagkit/pkg/target"
	"github.com/flagkit/flagkit/pkg/version"
)

// EncodeJSON writes cfg to w as an indented JSON document.
func EncodeJSON(w io.Writer, cfg *snapshot.Configuration) error {
	doc, err := buildDocument(cfg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// EncodeYAML writes cfg to w as a YAML document.
func EncodeYAML(w io.Writer, cfg *snapshot.Configuration) error {
	doc, err := buildDocument(cfg)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

func buildDocument(cfg *snapshot.Configuration) (wireDocument, error) {
	meta := cfg.Metadata()
	doc := wireDocument{
		Metadata: wireMetadata{
			Version:     meta.Version,
			GeneratedAt: meta.GeneratedAt,
			Source:      meta.Source,
		},
	}
	if meta.ID != uuid.Nil {
		doc.Metadata.ID = meta.ID.String()
	}

	// Identities() is sorted, making the output deterministic.
	for _, id := range cfg.Identities() {
		def, _ := cfg.Lookup(id)
		wf, err := buildWireFeature(def)
		if err != nil {
			return wireDocument{}, err
		}
		doc.Features = append(doc.Features, wf)
	}
	return doc, nil
}

func buildWireFeature(def *feature.Definition) (wireFeature, error) {
	id := def.Identity()

	t, err := valueTypeOf(def.Default())
	if err != nil {
		return wireFeature{}, fmt.Errorf("feature %s: default: %w", id, err)
	}

	wf := wireFeature{
		Namespace: id.Namespace(),
		Key:       id.Key(),
		Type:      t,
		Default:   def.Default(),
	}
	if !def.Active() {
		inactive := false
		wf.Active = &inactive
	}
	if def.Salt() != feature.DefaultSalt {
		wf.Salt = def.Salt()
	}

	for i, rule := range def.Rules() {
		wr, err := buildWireRule(t, rule)
		if err != nil {
			return wireFeature{}, fmt.Errorf("feature %s: rule %d: %w", id, i, err)
		}
		wf.Rules = append(wf.Rules, wr)
	}
	return wf, nil
}

func buildWireRule(t ValueType, rule feature.Rule) (wireRule, error) {
	vt, err := valueTypeOf(rule.Value())
	if err != nil {
		return wireRule{}, err
	}
	if vt != t {
		return wireRule{}, errors.Join(ErrUnsupportedType,
			fmt.Errorf("value type %q does not match feature type %q", vt, t))
	}

	rollout := rule.Rollout()
	wr := wireRule{
		Value:   rule.Value(),
		Rollout: &rollout,
		Note:    rule.Note(),
	}
	for _, id := range rule.Allowlist() {
		wr.Allowlist = append(wr.Allowlist, id.CanonicalHex())
	}

	wt, err := buildWireTargeting(rule.Targeting())
	if err != nil {
		return wireRule{}, err
	}
	wr.Targeting = wt
	return wr, nil
}

func buildWireTargeting(tg target.Targeting) (*wireTargeting, error) {
	if tg.Predicate != nil {
		return nil, errors.Join(ErrUnsupportedType,
			errors.New("predicates are code-level and have no wire form"))
	}

	var wt wireTargeting
	for _, tag := range tg.Locales {
		wt.Locales = append(wt.Locales, tag.String())
	}
	for _, platform := range tg.Platforms {
		wt.Platforms = append(wt.Platforms, string(platform))
	}
	wt.Axes = target.CopyAxes(tg.Axes)

	switch rng := tg.Versions.(type) {
	case nil, version.Unbounded:
	case version.AtLeast:
		wt.Versions = &wireVersions{Min: rng.Min.String()}
	case version.AtMost:
		wt.Versions = &wireVersions{Max: rng.Max.String()}
	case version.Between:
		wt.Versions = &wireVersions{Min: rng.Min.String(), Max: rng.Max.String()}
	default:
		return nil, errors.Join(ErrUnsupportedType,
			fmt.Errorf("version range %T has no wire form", rng))
	}

	if wt.Locales == nil && wt.Platforms == nil && wt.Versions == nil && wt.Axes == nil {
		return nil, nil
	}
	return &wt, nil
}

func valueTypeOf(value any) (ValueType, error) {
	switch value.(type) {
	case bool:
		return TypeBool, nil
	case string:
		return TypeString, nil
	case int, int64:
		return TypeInt, nil
	case float64:
		return TypeFloat, nil
	default:
		return "", errors.Join(ErrUnsupportedType, fmt.Errorf("%T", value))
	}
}
