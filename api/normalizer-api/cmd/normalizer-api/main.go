// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	internal_dictionary "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/dictionary"
	normalizer_routers "github.com/nghimestudio/vietnormalizer/api/normalizer-api/router"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
)

type AppRunner struct {
	E       *gin.Engine
	Cfg     *config.AppConfig
	Logger  commons.Logger
	Store   *internal_dictionary.Store
	Sources *internal_dictionary.Sources
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appRunner := AppRunner{}
	if err := appRunner.ResolveConfig(); err != nil {
		log.Fatalf("unable to resolve config: %v", err)
	}
	appRunner.Logging()
	defer appRunner.Logger.Sync()

	if err := appRunner.AllDictionary(ctx); err != nil {
		appRunner.Logger.Fatalf("unable to load dictionary: %v", err)
	}
	defer appRunner.Sources.Close()

	appRunner.Init()
	appRunner.AllRouters()

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", appRunner.Cfg.Host, appRunner.Cfg.Port),
		Handler: appRunner.E,
	}
	go func() {
		appRunner.Logger.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appRunner.Logger.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	appRunner.Logger.Info("shutting down normalizer-api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appRunner.Logger.Errorf("graceful shutdown failed: %v", err)
	}
}

func (app *AppRunner) ResolveConfig() error {
	vConfig, err := config.InitConfig()
	if err != nil {
		return err
	}
	cfg, err := config.GetApplicationConfig(vConfig)
	if err != nil {
		return err
	}
	app.Cfg = cfg
	return nil
}

func (app *AppRunner) Logging() {
	logger, err := commons.NewApplicationLogger(
		commons.Name(app.Cfg.Name),
		commons.Level(app.Cfg.LogLevel),
		commons.Path(app.Cfg.LogPath),
	)
	if err != nil {
		log.Fatalf("unable to create logger: %v", err)
	}
	app.Logger = logger
}

// AllDictionary builds the configured sources, loads the first snapshot and
// starts the file watcher when asked to.
func (app *AppRunner) AllDictionary(ctx context.Context) error {
	sources, err := internal_dictionary.NewSources(app.Logger, app.Cfg.DictionaryConfig)
	if err != nil {
		return err
	}
	app.Sources = sources
	app.Store = internal_dictionary.NewStore(app.Logger, sources.Acronyms, sources.Words)
	lookup, err := app.Store.Reload(ctx)
	if err != nil {
		return err
	}
	app.Logger.Infof("dictionary %s ready with %d entries", lookup.Version(), lookup.Len())

	if app.Cfg.DictionaryConfig.Watch && len(sources.Files) > 0 {
		watcher := internal_dictionary.NewWatcher(app.Logger, app.Store, sources.Files...)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				app.Logger.Errorf("dictionary watcher stopped: %v", err)
			}
		}()
	}
	return nil
}

func (app *AppRunner) Init() {
	if utils.FromEnvironmentStr(app.Cfg.Env) == utils.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}
	app.E = gin.New()
	app.E.Use(gin.Recovery())
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{utils.HEADER_REQUEST_ID, utils.HEADER_DICTIONARY_VERSION, utils.HEADER_ENVIRONMENT_KEY},
		MaxAge:        12 * time.Hour,
	}
	if app.Cfg.AnyOrigin() {
		corsConfig.AllowAllOrigins = true
	} else {
		for _, origin := range app.Cfg.AllowedOrigins {
			corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, strings.TrimSpace(origin))
		}
	}
	app.E.Use(cors.New(corsConfig))
}

func (app *AppRunner) AllRouters() {
	normalizer_routers.HealthCheckRoutes(app.Cfg, app.E, app.Logger, app.Store)
	normalizer_routers.NormalizeApiRoute(app.Cfg, app.E, app.Logger, app.Store)
}
