package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/recyclechain/ewaste-backend/internal/bus"
	"github.com/recyclechain/ewaste-backend/internal/classifier"
	"github.com/recyclechain/ewaste-backend/internal/evidence"
	"github.com/recyclechain/ewaste-backend/internal/ledger"
	"github.com/recyclechain/ewaste-backend/internal/ledger/ethereum"
	"github.com/recyclechain/ewaste-backend/internal/metrics"
	"github.com/recyclechain/ewaste-backend/internal/service"
	"github.com/recyclechain/ewaste-backend/internal/stats"
	"github.com/recyclechain/ewaste-backend/internal/transport"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	HTTPAddr          string        `long:"http-addr" env:"EWASTE_HTTP_ADDR" description:"address for the API server" default:":8080"`
	MetricsAddr       string        `long:"metrics-addr" env:"EWASTE_METRICS_ADDR" description:"address for the metrics server" default:":2112"`
	RPCURL            string        `long:"rpc-url" env:"EWASTE_RPC_URL" description:"Ethereum JSON-RPC URL" required:"true"`
	ChainID           int64         `long:"chain-id" env:"EWASTE_CHAIN_ID" description:"chain id of the target network" default:"80002"`
	Network           string        `long:"network" env:"EWASTE_NETWORK" description:"network label for metrics" default:"amoy"`
	TrackerAddress    string        `long:"tracker-address" env:"EWASTE_TRACKER_ADDRESS" description:"EWasteTracker contract address" required:"true"`
	TokenAddress      string        `long:"token-address" env:"EWASTE_TOKEN_ADDRESS" description:"reward token contract address" required:"true"`
	PrivateKey        string        `long:"private-key" env:"EWASTE_PRIVATE_KEY" description:"hex signing key; omit for read-only mode"`
	ClassifierURL     string        `long:"classifier-url" env:"EWASTE_CLASSIFIER_URL" description:"image classifier endpoint" default:"https://api-inference.huggingface.co/models/google/vit-base-patch16-224"`
	ClassifierAPIKey  string        `long:"classifier-api-key" env:"EWASTE_HF_API_KEY" description:"classifier API credential"`
	ClassifierTimeout time.Duration `long:"classifier-timeout" env:"EWASTE_CLASSIFIER_TIMEOUT" description:"classifier request timeout" default:"30s"`
	ScanRPS           int           `long:"scan-rps" env:"EWASTE_SCAN_RPS" description:"ledger reads per second during scans, 0 for unlimited" default:"20"`
	ReconcileInterval time.Duration `long:"reconcile-interval" env:"EWASTE_RECONCILE_INTERVAL" description:"full rescan interval for the stats index" default:"5m"`
	HTTPReadTimeout   time.Duration `long:"http-read-timeout" env:"EWASTE_HTTP_READ_TIMEOUT" description:"API server read timeout" default:"15s"`
	HTTPWriteTimeout  time.Duration `long:"http-write-timeout" env:"EWASTE_HTTP_WRITE_TIMEOUT" description:"API server write timeout; must outlast a classifier call plus transaction mining" default:"2m"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if !common.IsHexAddress(cfg.TrackerAddress) {
		logger.Fatal("invalid tracker contract address", zap.String("address", cfg.TrackerAddress))
	}
	if !common.IsHexAddress(cfg.TokenAddress) {
		logger.Fatal("invalid token contract address", zap.String("address", cfg.TokenAddress))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ewaste backend failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial ethereum rpc: %w", err)
	}
	defer client.Close()

	ledgerMetrics := metrics.NewLedgerClient(cfg.Network)
	gateway, err := ethereum.NewGateway(
		client,
		common.HexToAddress(cfg.TrackerAddress),
		cfg.PrivateKey,
		big.NewInt(cfg.ChainID),
		ledgerMetrics,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init ledger gateway: %w", err)
	}
	if _, ok := gateway.Signer(); !ok {
		logger.Warn("no signing key configured, submissions and verifications will be rejected")
	}

	resolver, err := ethereum.NewEventResolver()
	if err != nil {
		return fmt.Errorf("init event resolver: %w", err)
	}
	tokens, err := ethereum.NewTokenReader(client, common.HexToAddress(cfg.TokenAddress), ledgerMetrics, logger)
	if err != nil {
		return fmt.Errorf("init token reader: %w", err)
	}

	cache, err := evidence.New()
	if err != nil {
		return fmt.Errorf("init evidence cache: %w", err)
	}

	classifierMetrics := metrics.NewClassifier()
	gate := classifier.NewGate(
		classifier.NewClient(cfg.ClassifierURL, cfg.ClassifierAPIKey, cfg.ClassifierTimeout, classifierMetrics, logger),
		classifierMetrics,
		logger,
	)

	waiter := ledger.NewConsistencyReader(gateway, logger)
	events := bus.New()

	submission, err := service.NewSubmissionService(gateway, resolver, waiter, cache, events, logger)
	if err != nil {
		return err
	}
	verification, err := service.NewVerificationService(gateway, resolver, cache, gate, events, logger)
	if err != nil {
		return err
	}
	status, err := service.NewStatusService(gateway, logger)
	if err != nil {
		return err
	}

	scanner, err := stats.NewScanner(gateway, cfg.ScanRPS, metrics.NewScan(), logger)
	if err != nil {
		return err
	}
	index := stats.NewIndex()

	// Broadcasts feed the index two ways: typed deltas apply immediately,
	// and the argument-less signal wakes the reconciler for a full rescan.
	rescan := make(chan struct{}, 1)
	if err := events.SubscribeDataChanged(func() {
		select {
		case rescan <- struct{}{}:
		default:
		}
	}); err != nil {
		return fmt.Errorf("subscribe data-changed: %w", err)
	}
	if err := events.SubscribeDelta(func(d bus.Delta) {
		switch d.Kind {
		case bus.DeltaSubmitted:
			index.ApplySubmitted(d.Owner)
		case bus.DeltaVerified:
			index.ApplyVerified(d.Owner)
		}
	}); err != nil {
		return fmt.Errorf("subscribe stats delta: %w", err)
	}

	indexer, err := stats.NewIndexer(scanner, index, cfg.ReconcileInterval, logger, rescan)
	if err != nil {
		return err
	}
	go func() {
		if err := indexer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("indexer stopped", zap.Error(err))
		}
	}()

	board, err := stats.NewLeaderboardService(index, logger)
	if err != nil {
		return err
	}
	rewards, err := stats.NewRewardService(tokens, scanner, logger)
	if err != nil {
		return err
	}

	handler := transport.NewHandler(submission, verification, status, board, rewards, logger)

	if cfg.HTTPWriteTimeout <= cfg.ClassifierTimeout {
		logger.Warn("http write timeout does not cover a full classifier call; verify responses may be cut off",
			zap.Duration("writeTimeout", cfg.HTTPWriteTimeout),
			zap.Duration("classifierTimeout", cfg.ClassifierTimeout),
		)
	}

	srv := newAPIServer(cfg, cors.Default().Handler(handler.Router(logger)))
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
		events.WaitAsync()
	}()

	logger.Info("starting HTTP server", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newAPIServer builds the API server. The write deadline is deliberately long:
// submit and verify hold the connection through a classifier call and a mined
// transaction before the first response byte.
func newAPIServer(cfg config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
