// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package normalizer_api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	internal_type "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/type"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
)

// newStreamUpgrader accepts clients that send no Origin, such as servers,
// and browsers from an allowed origin.
func newStreamUpgrader(cfg *config.AppConfig) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || cfg.OriginAllowed(origin)
		},
	}
}

// StreamMessage is written back for every text frame received.
type StreamMessage struct {
	Type    string `json:"type"`
	Id      string `json:"id"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NormalizeStream upgrades to a WebSocket and normalizes each text frame.
// Query parameters prefixed with "normalizer." apply to every frame. A frame
// over the input limit gets an error message and the stream continues.
//
// @Router /v1/normalize/stream [get]
// @Summary Normalize a stream of text frames
// @Success 101 "Switching Protocols"
// @Failure 400 {object} gin.H
func (api *NormalizerApi) NormalizeStream(c *gin.Context) {
	opts := streamOptions(c)

	conn, err := api.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		api.logger.Warnf("normalize stream: websocket upgrade failed %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				api.logger.Debugf("normalize stream: read ended %v", err)
			}
			return
		}

		id := uuid.NewString()
		message := StreamMessage{Type: "normalized", Id: id}
		if messageType != websocket.TextMessage {
			message.Type = "error"
			message.Error = "only text frames are supported"
		} else if err := api.checkSize(string(payload)); err != nil {
			message.Type = "error"
			message.Error = err.Error()
		} else {
			message.Content = api.normalizer.NormalizeWithOptions(
				context.WithValue(ctx, commons.RequestIDKey, id), string(payload), opts)
		}

		if err := conn.WriteJSON(message); err != nil {
			api.logger.Errorf("normalize stream: write failed %v", err)
			return
		}
	}
}

func streamOptions(c *gin.Context) utils.Option {
	opts := utils.Option{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 && strings.HasPrefix(key, internal_type.OptionPrefix) {
			opts[key] = values[0]
		}
	}
	return opts
}
