// Package codec translates flag configurations between their wire form
// (JSON or YAML documents) and the in-memory snapshot.Configuration.
//
// Decoding is the trust boundary of the engine: documents are validated
// strictly, unknown fields are rejected, and every failure carries the
// document path where it occurred. A document either decodes into a fully
// valid configuration or decoding fails as a whole; partially decoded
// configurations never escape.
//
// # Wire Format
//
// A document holds optional metadata plus a list of features. Each feature
// declares a type discriminator that its default and all rule values must
// satisfy:
//
//	metadata:
//	  version: "2026-08-01"
//	  source: "s3://flags/checkout.yaml"
//	features:
//	  - namespace: checkout
//	    key: redesign
//	    type: bool
//	    default: false
//	    rules:
//	      - value: true
//	        rollout: 50
//	        targeting:
//	          platforms: [android]
//	          versions: {min: 2.1.0}
//
// # Usage
//
//	dec := codec.NewDecoder(codec.WithCatalog(catalog))
//	cfg, err := dec.DecodeJSON(file)
//	if err != nil {
//	    var decodeErr *codec.DecodeError
//	    if errors.As(err, &decodeErr) {
//	        log.Printf("bad document at %s: %s", decodeErr.Path, decodeErr.Reason)
//	    }
//	    return err
//	}
//	if err := reg.Load(cfg); err != nil { ... }
//
// EncodeJSON and EncodeYAML produce deterministic output: features are
// ordered by identity regardless of insertion order.
package codec
