// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/balance"
	"github.com/openmarket/marketd/counter"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/market"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/rpc/certificate"
	"github.com/openmarket/marketd/rpc/listeners"
	"github.com/openmarket/marketd/rpc/server"
	"github.com/openmarket/marketd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// the marketplace identities must be valid before anything starts
	admin, err := account.AddressFromBase58(theConfiguration.Admin)
	if nil != err {
		exitwithstatus.Message("%s: invalid admin address: %q  error: %s", program, theConfiguration.Admin, err)
	}
	marketplace, err := account.AddressFromBase58(theConfiguration.Marketplace)
	if nil != err {
		exitwithstatus.Message("%s: invalid marketplace address: %q  error: %s", program, theConfiguration.Marketplace, err)
	}
	listingFee, err := currency.AmountFromString(theConfiguration.FeePolicy.ListingFee)
	if nil != err {
		exitwithstatus.Message("%s: invalid listing fee: %q  error: %s", program, theConfiguration.FeePolicy.ListingFee, err)
	}
	feeRecipient, err := account.AddressFromBase58(theConfiguration.FeePolicy.Recipient)
	if nil != err {
		exitwithstatus.Message("%s: invalid fee recipient: %q  error: %s", program, theConfiguration.FeePolicy.Recipient, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// item registry
	log.Info("initialise registry")
	err = registry.Initialise(registry.Handles{
		Items:     storage.Pool.Items,
		Approvals: storage.Pool.Approvals,
		Counters:  storage.Pool.Counters,
	})
	if nil != err {
		log.Criticalf("registry initialise error: %s", err)
		exitwithstatus.Message("registry initialise error: %s", err)
	}
	defer registry.Finalise()

	// settlement balances
	log.Info("initialise balance")
	err = balance.Initialise(storage.Pool.Balances)
	if nil != err {
		log.Criticalf("balance initialise error: %s", err)
		exitwithstatus.Message("balance initialise error: %s", err)
	}
	defer balance.Finalise()

	// marketplace ledger
	log.Info("initialise market")
	err = market.Initialise(admin, marketplace, market.Handles{
		Listings:      storage.Pool.Listings,
		ActiveListing: storage.Pool.ActiveListing,
		Counters:      storage.Pool.Counters,
		FeePolicy:     storage.Pool.FeePolicy,
	}, market.FeePolicy{
		ListingFee: listingFee,
		Recipient:  feeRecipient,
	})
	if nil != err {
		log.Criticalf("market initialise error: %s", err)
		exitwithstatus.Message("market initialise error: %s", err)
	}
	defer market.Finalise()

	// client RPC certificate
	certificateData, err := os.ReadFile(theConfiguration.ClientRPC.Certificate)
	if nil != err {
		log.Criticalf("certificate read error: %s", err)
		exitwithstatus.Message("certificate: %q read error: %s", theConfiguration.ClientRPC.Certificate, err)
	}
	keyData, err := os.ReadFile(theConfiguration.ClientRPC.PrivateKey)
	if nil != err {
		log.Criticalf("private key read error: %s", err)
		exitwithstatus.Message("private key: %q read error: %s", theConfiguration.ClientRPC.PrivateKey, err)
	}

	rpcLog := logger.New("rpc")
	tlsConfiguration, fingerprint, err := certificate.Get(rpcLog, "client_rpc", string(certificateData), string(keyData))
	if nil != err {
		log.Criticalf("certificate setup error: %s", err)
		exitwithstatus.Message("certificate setup error: %s", err)
	}

	// start up the rpc listener
	rpcCount := counter.Counter(0)
	rpcServer := server.Create(rpcLog, version, &rpcCount)

	rpcListener, err := listeners.NewRPC(
		&theConfiguration.ClientRPC,
		rpcLog,
		&rpcCount,
		rpcServer,
		tlsConfiguration,
		fingerprint,
	)
	if nil != err {
		log.Criticalf("rpc create error: %s", err)
		exitwithstatus.Message("rpc create error: %s", err)
	}
	err = rpcListener.Serve()
	if nil != err {
		log.Criticalf("rpc serve error: %s", err)
		exitwithstatus.Message("rpc serve error: %s", err)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
