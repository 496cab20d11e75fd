package target

import (
	"golang.org/x/text/language"

	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/version"
)

// Platform identifies the client platform of an evaluation context.
type Platform string

// Built-in platforms. Hosts may define further values; platform matching is
// plain string-set membership.
const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
	PlatformDesktop Platform = "desktop"
)

// Context carries the request-scoped facts a rule is matched against. It is
// a plain immutable value; build one per evaluation.
type Context struct {
	// StableID is the persistent per-user or per-device identifier used for
	// rollout bucketing.
	StableID identity.StableID

	// Locale is the caller's BCP 47 locale. Canonicalize with ParseLocale
	// when starting from a raw string.
	Locale language.Tag

	// Platform is the caller's client platform.
	Platform Platform

	// Version is the caller's application version. The zero value (0.0.0)
	// participates in range checks like any other version.
	Version version.Version

	// Axes holds the caller's values per axis id. A context may carry
	// several values for one axis.
	Axes map[string][]string
}

// ParseLocale canonicalizes a raw locale string ("en_US", "en-us") into a
// BCP 47 tag. Unparseable input yields the undetermined tag, which matches
// no locale constraint.
func ParseLocale(raw string) language.Tag {
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und
	}
	return tag
}

// AxisValues returns the context's values for the given axis id.
func (c Context) AxisValues(axisID string) []string {
	return c.Axes[axisID]
}
