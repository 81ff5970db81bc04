// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics provides configurability for Prometheus-based counter metrics.  The more general
go-kit interfaces are used where possible, so that code which records measurements never needs to
know about Prometheus.
*/
package xmetrics
