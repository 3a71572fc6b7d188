// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpcclient implements a small JSON-RPC 1.0 client for talking to
// the node daemon that backs the mempool indexer.  It only covers the
// handful of calls the Daemon collaborator needs (getrawmempool,
// getrawtransaction); it is not a general-purpose wallet/chain RPC client.
package rpcclient

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"
	"net/http"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/pkt-cash/memindex/btcjson"
	"github.com/pkt-cash/memindex/btcutil/er"
)

// ConnConfig describes the connection parameters for a single daemon.
type ConnConfig struct {
	Host         string
	User         string
	Pass         string
	DisableTLS   bool
	Certificates []byte
	Timeout      time.Duration
}

// Client is a synchronous JSON-RPC 1.0 client.  Requests are sent one at a
// time over a pooled *http.Client; there is no background dispatch loop,
// matching the request/response shape the Daemon collaborator actually
// needs from the synchronizer.
type Client struct {
	config     ConnConfig
	httpClient *http.Client
	nextID     uint64
}

// New creates a new RPC client for the given connection configuration.
func New(cfg ConnConfig) (*Client, er.R) {
	transport := &http.Transport{}
	if !cfg.DisableTLS {
		pool, err := certPool(cfg.Certificates)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}, nil
}

func (c *Client) nextRequestID() uint64 {
	return atomic.AddUint64(&c.nextID, 1)
}

func (c *Client) url() string {
	scheme := "https"
	if c.config.DisableTLS {
		scheme = "http"
	}
	return scheme + "://" + c.config.Host
}

// Call sends a single JSON-RPC 1.0 request and unmarshals the result field
// into result, which must be a pointer.
func (c *Client) Call(method string, params []interface{}, result interface{}) er.R {
	req, err := btcjson.NewRequest(c.nextRequestID(), method, params)
	if err != nil {
		return err
	}
	marshalled, errr := jsoniter.Marshal(req)
	if errr != nil {
		return er.E(errors.Wrap(errr, "marshal rpc request"))
	}

	httpReq, errr := http.NewRequest("POST", c.url(), bytes.NewReader(marshalled))
	if errr != nil {
		return er.E(errors.Wrap(errr, "build rpc request"))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.config.User, c.config.Pass)

	resp, errr := c.httpClient.Do(httpReq)
	if errr != nil {
		return er.E(errors.Wrap(errr, "rpc request failed"))
	}
	defer resp.Body.Close()

	body, errr := ioutil.ReadAll(resp.Body)
	if errr != nil {
		return er.E(errors.Wrap(errr, "read rpc response"))
	}
	if resp.StatusCode != http.StatusOK && len(body) == 0 {
		return er.Errorf("rpc call %s: http status %d", method, resp.StatusCode)
	}

	var rpcResp btcjson.Response
	if errr := jsoniter.Unmarshal(body, &rpcResp); errr != nil {
		return er.E(errors.Wrapf(errr, "unmarshal rpc response for %s", method))
	}
	if rpcResp.Error != nil {
		return er.Errorf("rpc call %s failed: %s", method, rpcResp.Error.Message)
	}
	if result == nil {
		return nil
	}
	if errr := jsoniter.Unmarshal(rpcResp.Result, result); errr != nil {
		return er.E(errors.Wrapf(errr, "unmarshal rpc result for %s", method))
	}
	return nil
}

func certPool(certs []byte) (*x509.CertPool, er.R) {
	if len(certs) == 0 {
		return x509.NewCertPool(), nil
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(certs) {
		return nil, er.New("unable to parse RPC server certificate")
	}
	return pool, nil
}
