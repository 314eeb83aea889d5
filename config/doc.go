// Package config loads streamkit configuration from YAML files and
// environment variables. The stream core needs no configuration; this
// covers the utility layer (logger, database) for applications embedding
// the library.
package config
