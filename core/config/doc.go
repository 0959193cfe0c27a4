// Package config provides the bootstrap configuration of the version counter.
//
// Configuration lives in one TOML file per profile inside the configuration
// directory (Development.toml, Production.toml). Files are read with Viper and
// written with go-toml.
//
// # Configuration Structure
//
//	bind-addr = "127.0.0.1:8080"
//	cors-origins = []
//
//	[bucket-info]
//	name = "resources"
//
//	[bucket-info.region]
//	region = "eu-central-1"
//	endpoint = "https://s3.example.com"
//
//	[bucket-info.credentials]
//	access-key = "..."
//	secret-key = "..."
//
// # Loading
//
// Load never starts the server with an incomplete bucket connection: missing
// fields are collected from the operator through a Prompter (secrets without
// echo) and the completed file is persisted. I/O failures are reported as
// ErrIO, undecodable or invalid files as ErrParse.
//
// # Usage
//
//	profile, _ := config.ParseProfile("production")
//	cfg, err := config.Load(profile, "config", config.NewTerminalPrompter(os.Stdin, os.Stdout), log)
//	if err != nil {
//	    log.Fatal("Failed to load configuration", zap.Error(err))
//	}
package config
