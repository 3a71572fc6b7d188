// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config loads memindexd's configuration from a config file and
// command line flags, in that order of increasing precedence, following
// the same two-pass parser shape used throughout the pkt-cash tooling:
//   1) start with a default config with sane settings
//   2) pre-parse the command line to check for an alternative config file
//   3) load the config file, overwriting defaults with any specified options
//   4) parse CLI options again, overwriting/adding any specified options
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chaincfg"
)

const (
	defaultConfigFilename  = "memindexd.conf"
	defaultLogDirname      = "logs"
	defaultLogLevel        = "info"
	defaultNetwork         = "mainnet"
	defaultRecentTxsSize   = 100
	defaultBacklogTTL      = 10 * time.Second
	defaultSyncInterval    = time.Second
	defaultRPCHost         = "127.0.0.1:8334"
	defaultMetricsListen   = "127.0.0.1:9332"
	defaultIndexUnspend    = false
	defaultDisableRPCTLS   = false
	defaultChainQueryPath  = "chainquery"
)

var (
	defaultHomeDir    = appDataDir("memindexd")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// Config holds every setting the memindexd process needs: where to find
// the node it synchronizes against, where to keep its on-disk confirmed
// UTXO set, and the tunables of the mempool core itself.
type Config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir     string `long:"homedir" description:"Creates this directory at startup"`
	LogDir      string `long:"logdir" description:"Log directory (not read: all log output goes to stderr)"`
	DebugLevel  string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	Network string `long:"network" description:"Which network to operate on: mainnet, testnet, regtest"`

	RPCHost    string `long:"rpchost" description:"Host:port of the node's JSON-RPC interface"`
	RPCUser    string `short:"u" long:"rpcuser" description:"Username for RPC connections"`
	RPCPass    string `short:"P" long:"rpcpass" default-mask:"-" description:"Password for RPC connections"`
	RPCCert    string `long:"rpccert" description:"File containing the node's RPC certificate, if RPC TLS is enabled"`
	DisableRPCTLS bool `long:"norpctls" description:"Disable TLS for the RPC connection"`

	ChainQueryPath string `long:"chainquerypath" description:"Directory for the on-disk confirmed-UTXO index"`

	SyncInterval      time.Duration `long:"syncinterval" description:"How often to poll the node for mempool changes"`
	RecentTxsSize     int           `long:"recenttxssize" description:"Number of most-recent transactions to keep an overview of"`
	BacklogStatsTTL   time.Duration `long:"backlogttl" description:"How long a computed backlog summary may be served before being recomputed"`
	IndexUnspendables bool          `long:"indexunspendables" description:"Also index provably unspendable outputs (e.g. OP_RETURN) instead of skipping them"`

	MetricsListen string `long:"metricslisten" description:"Address to serve Prometheus metrics on"`
}

// NetworkTag resolves the configured network name to a chaincfg.Network.
func (c *Config) NetworkTag() (chaincfg.Network, er.R) {
	return chaincfg.NetworkFromString(c.Network)
}

// Load parses the configuration from the config file and command line,
// command line flags taking precedence over the file, and the file over
// the defaults below.
func Load() (*Config, []string, er.R) {
	cfg := Config{
		ConfigFile:        defaultConfigFile,
		HomeDir:           defaultHomeDir,
		LogDir:            defaultLogDir,
		DebugLevel:        defaultLogLevel,
		Network:           defaultNetwork,
		RPCHost:           defaultRPCHost,
		DisableRPCTLS:     defaultDisableRPCTLS,
		ChainQueryPath:    filepath.Join(defaultHomeDir, defaultChainQueryPath),
		SyncInterval:      defaultSyncInterval,
		RecentTxsSize:     defaultRecentTxsSize,
		BacklogStatsTTL:   defaultBacklogTTL,
		IndexUnspendables: defaultIndexUnspend,
		MetricsListen:     defaultMetricsListen,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, errr := preParser.Parse()
	if errr != nil {
		if e, ok := errr.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, errr)
			return nil, nil, er.E(errr)
		}
	}

	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	parser := flags.NewParser(&cfg, flags.Default)
	errr = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if errr != nil {
		if _, ok := errr.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "error parsing config file: %v\n", errr)
			return nil, nil, er.E(errr)
		}
	}

	remainingArgs, errr := parser.Parse()
	if errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			return nil, nil, er.E(errr)
		}
		return nil, nil, nil
	}

	if errr := os.MkdirAll(cfg.HomeDir, 0700); errr != nil {
		return nil, nil, er.Errorf("failed to create home directory: %v", errr)
	}

	if _, err := cfg.NetworkTag(); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// appDataDir returns the default per-OS application data directory for the
// given app name, matching the convention the rest of the toolchain uses
// (no XDG/roaming-profile special-casing; a plain dotfile under $HOME is
// enough for a single-purpose daemon like this one).
func appDataDir(appName string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "." + appName
	}
	return filepath.Join(home, "."+appName)
}
