/*
Copyright (c) 2013-2018 The btcsuite developers
Use of this source code is governed by an ISC
license that can be found in the LICENSE file.

Dfsd selects the network a DFS node runs on and prepares the per-network data
directory, log directory and RPC listeners.

Usage:

	dfsd [OPTIONS]

For an up-to-date help message:

	dfsd --help

Exactly one network is active per process. Mainnet is the default; the
--testnet, --regtest, --segwittest and --dfstestnet flags choose another one.
--testnet and --regtest cannot be combined.

The long form of all option flags (except -C) can be specified in a configuration
file that is automatically parsed when dfsd starts up. By default, the
configuration file is located at ~/.dfsd/dfsd.conf on POSIX-style operating
systems and %LOCALAPPDATA%\dfsd\dfsd.conf on Windows. The -C (--configfile)
flag can be used to override this location.
*/
package main
