// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - TLS JSON-RPC access to the ledger
//
// query services are read only; the Group service is the single write
// entry point and hands submitted groups to the executor one at a
// time.
package rpc

import (
	"io"
	netrpc "net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/counter"
	"github.com/carbonledger/carbond/fault"
)

const (
	tlsName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// ServerArgument - parameters for the listener callback
type ServerArgument struct {
	Log    *logger.L
	Server *netrpc.Server
}

// globals
type rpcData struct {
	sync.RWMutex

	log      *logger.L
	listener *listener.MultiListener
	argument *ServerArgument

	initialised bool
}

var globalData rpcData

// count of active connections, for Node.Info
var connectionCount counter.Counter

// Initialise - start serving
func Initialise(configuration *RPCConfiguration, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Listen) || configuration.MaximumConnections <= 0 {
		log.Info("disabled")
		globalData.initialised = true
		return nil
	}

	tlsConfiguration, fingerprint, err := getCertificate(log, tlsName,
		configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	limiter := listener.NewLimiter(configuration.MaximumConnections)

	ml, err := listener.NewMultiListener(tlsName, configuration.Listen,
		tlsConfiguration, limiter, Callback)
	if nil != err {
		log.Errorf("invalid %s listen addresses: %s", tlsName, err)
		return err
	}
	globalData.listener = ml

	globalData.argument = &ServerArgument{
		Log:    log,
		Server: createServer(log, version, time.Now().UTC()),
	}
	ml.Start(globalData.argument)

	globalData.initialised = true
	return nil
}

// Finalise - stop serving
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	if nil != globalData.listener {
		globalData.listener.Stop()
		globalData.listener = nil
	}
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Callback - serve JSON-RPC on one accepted connection
func Callback(conn io.ReadWriteCloser, argument interface{}) {
	serverArgument := argument.(*ServerArgument)

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)
}
