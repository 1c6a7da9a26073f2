// Package registry builds the cakectl command tree from declarative
// descriptors. Commands, their options, and the field whitelist each handler
// is allowed to read are plain data consumed by Build, which validates the
// whole graph before any input is parsed: duplicate names, colliding option
// scopes, and whitelist fields that no option declares are all rejected at
// build time rather than surfacing mid-dispatch.
package registry
