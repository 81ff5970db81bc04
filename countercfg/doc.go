// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package countercfg builds counters from viper configuration.  A typical configuration looks like:

	counter:
	  initial: 10
	  instrument: true
	  log: true
	log:
	  level: debug
	  json: true

NewViper locates and reads that file from the command line flags, and NewLogger builds the logger
from the log subtree.  ProvideConfig and Provide expose the same construction as uber/fx options.
*/
package countercfg
