// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package normalizer_routers

import (
	"github.com/gin-gonic/gin"
	normalizerApi "github.com/nghimestudio/vietnormalizer/api/normalizer-api/api"
	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	internal_dictionary "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/dictionary"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

func HealthCheckRoutes(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, store *internal_dictionary.Store) {
	logger.Info("Internal HealthCheckRoutes added to engine.")
	apiv1 := engine.Group("")
	hcApi := normalizerApi.NewHealthCheckApi(cfg, logger, store)
	{
		apiv1.GET("/readiness/", hcApi.Readiness)
		apiv1.GET("/healthz/", hcApi.Healthz)
	}
}

func NormalizeApiRoute(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, store *internal_dictionary.Store) {
	logger.Info("NormalizeApiRoute added to engine.")
	apiv1 := engine.Group("/v1")
	nApi := normalizerApi.NewNormalizerApi(cfg, logger, store)
	{
		apiv1.POST("/normalize", nApi.Normalize)
		apiv1.GET("/normalize/stream", nApi.NormalizeStream)
		apiv1.POST("/dictionary/reload", nApi.ReloadDictionary)
		apiv1.GET("/dictionary/lookup/:word", nApi.LookupWord)
	}
}
