// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg holds the small, per-network parameter table the
// indexer needs.  Rather than lazily-initialized global constants selected
// by build tags, every network's parameters are built once, eagerly, into
// an immutable table keyed by a Network value; callers pick a row at
// startup and pass it down explicitly.
package chaincfg

import "github.com/pkt-cash/memindex/btcutil/er"

// Network identifies which chain variant a running instance is indexing.
type Network uint8

const (
	// Mainnet is the production network.
	Mainnet Network = iota
	// Testnet is the public test network.
	Testnet
	// Regtest is a local regression-test network with no fixed
	// parameters shared between instances.
	Regtest
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Regtest:
		return "regtest"
	default:
		return "unknown"
	}
}

// Params holds the small set of per-network parameters: the genesis block
// hash and whether output scripts on this network ever carry the opaque
// extra-data payload.  The genesis hash is carried in the table only;
// nothing in this module compares it against the daemon's chain.
type Params struct {
	Net                Network
	Name               string
	GenesisHash        string
	HasExtendedOutputs bool
}

var table = map[Network]Params{
	Mainnet: {
		Net:                Mainnet,
		Name:               "mainnet",
		GenesisHash:        "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
		HasExtendedOutputs: false,
	},
	Testnet: {
		Net:                Testnet,
		Name:               "testnet",
		GenesisHash:        "000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943",
		HasExtendedOutputs: false,
	},
	Regtest: {
		Net:                Regtest,
		Name:               "regtest",
		GenesisHash:        "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206",
		HasExtendedOutputs: true,
	},
}

// ParamsFor returns the immutable parameter row for the given network.  The
// table is built once at package initialization; this is a lookup, never a
// lazy construction.
func ParamsFor(n Network) (Params, er.R) {
	p, ok := table[n]
	if !ok {
		return Params{}, er.Errorf("unrecognized network %d", n)
	}
	return p, nil
}

// NetworkFromString parses the --network config flag value into a Network.
func NetworkFromString(s string) (Network, er.R) {
	switch s {
	case "mainnet", "":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	case "regtest":
		return Regtest, nil
	default:
		return 0, er.Errorf("unknown network %q", s)
	}
}
