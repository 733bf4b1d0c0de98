// Package provider implements the translation backends and their registry.
package provider

import (
	"net/http"

	"github.com/ZaguanLabs/gotrans"
)

// Backend is an alias to the main package interface for convenience.
type Backend = gotrans.Backend

// Translation is an alias to the main package type.
type Translation = gotrans.Translation

// Engine names understood by DefaultRegistry.
const (
	EngineBing   = "bing"
	EngineCiba   = "ciba"
	EngineYoudao = "youdao"
)

// RegistryConfig holds per-engine configuration for DefaultRegistry.
type RegistryConfig struct {
	HTTPClient *http.Client // Shared client for engines without their own (default: http.DefaultClient)
	Bing       BingConfig
	Ciba       CibaConfig
	Youdao     YoudaoConfig
}

// DefaultRegistry returns a registry holding exactly the bing, ciba and
// youdao engines. Each Lookup constructs a fresh backend from cfg.
func DefaultRegistry(cfg RegistryConfig) *gotrans.Registry {
	if cfg.Bing.HTTPClient == nil {
		cfg.Bing.HTTPClient = cfg.HTTPClient
	}
	if cfg.Ciba.HTTPClient == nil {
		cfg.Ciba.HTTPClient = cfg.HTTPClient
	}
	if cfg.Youdao.HTTPClient == nil {
		cfg.Youdao.HTTPClient = cfg.HTTPClient
	}

	r := gotrans.NewRegistry()
	r.Register(EngineBing, func() gotrans.Backend { return NewBingProvider(cfg.Bing) })
	r.Register(EngineCiba, func() gotrans.Backend { return NewCibaProvider(cfg.Ciba) })
	r.Register(EngineYoudao, func() gotrans.Backend { return NewYoudaoProvider(cfg.Youdao) })
	return r
}
