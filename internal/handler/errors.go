// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when no service layer is given.
// It is a fatal misconfiguration at startup.
var errNoServices = errors.New("services are not configured")
