// Package config loads data sets (a feature schema, labelled records and the
// pairs to compare) from YAML.
package config
