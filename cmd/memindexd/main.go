// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command memindexd runs the mempool indexer: it polls a node's JSON-RPC
// interface for mempool membership, keeps the in-memory mempool index
// up to date, and serves its Prometheus metrics.
package main

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chaincfg"
	"github.com/pkt-cash/memindex/chainquery"
	"github.com/pkt-cash/memindex/config"
	"github.com/pkt-cash/memindex/daemon"
	"github.com/pkt-cash/memindex/limits"
	"github.com/pkt-cash/memindex/mempool"
	"github.com/pkt-cash/memindex/metrics"
	"github.com/pkt-cash/memindex/pktconfig/version"
	"github.com/pkt-cash/memindex/rpcclient"
)

var log btclog.Logger

// setupLogging builds a single stderr-backed btclog.Logger at the
// requested level and wires it into every package that exposes a
// UseLogger hook.
func setupLogging(levelStr string) btclog.Logger {
	backend := btclog.NewBackend(os.Stderr)
	logger := backend.Logger("MAIN")
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		level = btclog.InfoLvl
	}
	logger.SetLevel(level)

	mempoolLogger := backend.Logger("MPOL")
	mempoolLogger.SetLevel(level)
	mempool.UseLogger(mempoolLogger)

	return logger
}

func memindexdMain() er.R {
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}
	if cfg.ShowVersion {
		fmt.Println("memindexd version", version.Version())
		return nil
	}

	log = setupLogging(cfg.DebugLevel)
	log.Infof("Version %s", version.Version())

	netTag, err := cfg.NetworkTag()
	if err != nil {
		return err
	}
	netParams, err := chaincfg.ParamsFor(netTag)
	if err != nil {
		return err
	}

	chainQuery, err := chainquery.Open(cfg.ChainQueryPath)
	if err != nil {
		return err
	}
	defer chainQuery.Close()

	var rpcCerts []byte
	if !cfg.DisableRPCTLS && cfg.RPCCert != "" {
		certs, errr := ioutil.ReadFile(cfg.RPCCert)
		if errr != nil {
			return er.E(errr)
		}
		rpcCerts = certs
	}

	rpcClient, err := rpcclient.New(rpcclient.ConnConfig{
		Host:         cfg.RPCHost,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPass,
		DisableTLS:   cfg.DisableRPCTLS,
		Certificates: rpcCerts,
	})
	if err != nil {
		return err
	}
	chainDaemon := daemon.New(rpcClient)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	pool := mempool.New(mempool.Config{
		NetworkType:       netTag,
		HasExtendedOutputs: netParams.HasExtendedOutputs,
		RecentTxsSize:     cfg.RecentTxsSize,
		BacklogStatsTTL:   cfg.BacklogStatsTTL,
		IndexUnspendables: cfg.IndexUnspendables,
	}, chainQuery, m)

	interrupt := interruptListener()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		log.Infof("Metrics listening on %s", cfg.MetricsListen)
		log.Errorf("%v", http.ListenAndServe(cfg.MetricsListen, mux))
	}()

	ticker := time.NewTicker(cfg.SyncInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := pool.Update(chainDaemon); err != nil {
				log.Warnf("sync cycle failed: %v", err)
			}
		case <-interrupt:
			log.Info("Shutdown complete")
			return nil
		}
	}
}

func interruptListener() <-chan struct{} {
	c := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(c)
	}()
	return c
}

func main() {
	version.SetUserAgentName("memindexd")
	runtime.GOMAXPROCS(runtime.NumCPU())
	debug.SetGCPercent(10)

	if err := limits.SetLimits(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set limits: %v\n", err)
		os.Exit(1)
	}

	if err := memindexdMain(); err != nil {
		os.Exit(1)
	}
}
