// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package normalizer_api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	internal_dictionary "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/dictionary"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
)

type HealthCheckApi struct {
	cfg    *config.AppConfig
	logger commons.Logger
	store  *internal_dictionary.Store
}

func NewHealthCheckApi(cfg *config.AppConfig, logger commons.Logger, store *internal_dictionary.Store) *HealthCheckApi {
	return &HealthCheckApi{cfg: cfg, logger: logger, store: store}
}

// Readiness reports ready once a dictionary snapshot has been loaded from
// at least one source without error.
func (h *HealthCheckApi) Readiness(c *gin.Context) {
	lookup := h.store.Current()
	ready := false
	for _, status := range lookup.Sources() {
		if status.Error == "" {
			ready = true
			break
		}
	}
	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"ready":              ready,
		"dictionary_version": lookup.Version(),
		"entries":            lookup.Len(),
	})
}

// Healthz reports liveness and names the environment in
// utils.HEADER_ENVIRONMENT_KEY.
func (h *HealthCheckApi) Healthz(c *gin.Context) {
	env := utils.FromEnvironmentStr(h.cfg.Env).Get()
	c.Header(utils.HEADER_ENVIRONMENT_KEY, env)
	c.JSON(http.StatusOK, gin.H{
		"healthy":     true,
		"service":     h.cfg.Name,
		"version":     h.cfg.Version,
		"environment": env,
	})
}
