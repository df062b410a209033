// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package normalizer_api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	internal_dictionary "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/dictionary"
	internal_type "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/type"
	internal_vietnamese "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/vietnamese"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
	"github.com/patrickmn/go-cache"
)

type NormalizeRequest struct {
	Text    string                 `json:"text"`
	Options map[string]interface{} `json:"options"`
}

type NormalizeResponse struct {
	Id                string `json:"id"`
	Text              string `json:"text"`
	Normalized        string `json:"normalized"`
	DictionaryVersion string `json:"dictionary_version"`
}

type ReloadResponse struct {
	Version string                             `json:"version"`
	Entries int                                `json:"entries"`
	Sources []internal_dictionary.SourceStatus `json:"sources"`
}

type LookupResponse struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	Acronym       bool   `json:"acronym"`
	Version       string `json:"version"`
}

type normalizerApi struct {
	cfg        *config.AppConfig
	logger     commons.Logger
	store      *internal_dictionary.Store
	normalizer internal_type.TextNormalizer
	results    *cache.Cache
	upgrader   websocket.Upgrader
}

// NormalizerApi is the HTTP and WebSocket surface over one normalizer
// instance and its dictionary store.
type NormalizerApi struct {
	normalizerApi
}

func NewNormalizerApi(cfg *config.AppConfig, logger commons.Logger, store *internal_dictionary.Store) *NormalizerApi {
	return &NormalizerApi{
		normalizerApi{
			cfg:    cfg,
			logger: logger,
			store:  store,
			normalizer: internal_vietnamese.NewVietnameseNormalizer(logger,
				internal_type.NormalizerConfigFrom(cfg.NormalizerConfig),
				store),
			results:  cache.New(cfg.CacheConfig.TTL, cfg.CacheConfig.CleanupInterval),
			upgrader: newStreamUpgrader(cfg),
		},
	}
}

// Normalize
//
// @Router /v1/normalize [post]
// @Summary Normalize text for speech synthesis
// @Accept json
// @Produce json
// @Success 200 {object} NormalizeResponse
// @Failure 400 {object} gin.H
// @Failure 413 {object} gin.H
func (api *NormalizerApi) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.Debugf("normalize: invalid request body %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := api.checkSize(req.Text); err != nil {
		api.logger.Debugf("normalize: rejected request %v", err)
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}

	version := api.store.Current().Version()
	resp := NormalizeResponse{
		Id:                uuid.NewString(),
		Text:              req.Text,
		DictionaryVersion: version,
	}
	c.Header(utils.HEADER_REQUEST_ID, resp.Id)
	c.Header(utils.HEADER_DICTIONARY_VERSION, version)
	if utils.IsEmpty(req.Text) {
		c.JSON(http.StatusOK, resp)
		return
	}

	var key string
	cacheable := api.cacheable(req.Text)
	if cacheable {
		key = resultKey(version, req)
		if cached, ok := api.results.Get(key); ok {
			resp.Normalized = cached.(string)
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	ctx := context.WithValue(c.Request.Context(), commons.RequestIDKey, resp.Id)
	resp.Normalized = api.normalizer.NormalizeWithOptions(ctx, req.Text, utils.Option(req.Options))
	if cacheable && api.hasCacheRoom() {
		api.results.Set(key, resp.Normalized, cache.DefaultExpiration)
	}
	c.JSON(http.StatusOK, resp)
}

// ReloadDictionary
//
// @Router /v1/dictionary/reload [post]
// @Summary Rebuild the dictionary snapshot from its sources
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 500 {object} gin.H
func (api *NormalizerApi) ReloadDictionary(c *gin.Context) {
	lookup, err := api.store.Reload(c.Request.Context())
	if err != nil {
		api.logger.Errorf("dictionary: reload failed %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to reload dictionary"})
		return
	}
	api.results.Flush()
	c.JSON(http.StatusOK, ReloadResponse{
		Version: lookup.Version(),
		Entries: lookup.Len(),
		Sources: lookup.Sources(),
	})
}

// LookupWord
//
// @Router /v1/dictionary/lookup/{word} [get]
// @Summary Resolve a single word against the current dictionary
// @Produce json
// @Success 200 {object} LookupResponse
// @Failure 404 {object} gin.H
func (api *NormalizerApi) LookupWord(c *gin.Context) {
	word := strings.TrimSpace(c.Param("word"))
	lookup := api.store.Current()
	value, ok := lookup.Resolve(word)
	if word == "" || !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "word not found", "word": word})
		return
	}
	c.JSON(http.StatusOK, LookupResponse{
		Word:          word,
		Pronunciation: value,
		Acronym:       lookup.IsAcronym(word),
		Version:       lookup.Version(),
	})
}

// checkSize enforces NormalizerConfig.MaxInputBytes for one text.
func (api *normalizerApi) checkSize(text string) error {
	limit := api.cfg.NormalizerConfig.MaxInputBytes
	if limit > 0 && len(text) > limit {
		return fmt.Errorf("text of %d bytes exceeds the limit of %d bytes", len(text), limit)
	}
	return nil
}

func (api *normalizerApi) cacheable(text string) bool {
	limit := api.cfg.CacheConfig.MaxTextBytes
	return limit <= 0 || len(text) <= limit
}

func (api *normalizerApi) hasCacheRoom() bool {
	limit := api.cfg.CacheConfig.MaxEntries
	return limit <= 0 || api.results.ItemCount() < limit
}

// resultKey identifies a normalization result by a sha256 digest of the
// dictionary version, the options and the text. Options are encoded as JSON,
// which orders map keys, so equal option sets give equal keys.
func resultKey(version string, req NormalizeRequest) string {
	options, _ := json.Marshal(req.Options)
	h := sha256.New()
	h.Write([]byte(version))
	h.Write([]byte(commons.SEPARATOR))
	h.Write(options)
	h.Write([]byte(commons.SEPARATOR))
	h.Write([]byte(req.Text))
	return hex.EncodeToString(h.Sum(nil))
}
