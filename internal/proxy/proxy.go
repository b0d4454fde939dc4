// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package proxy implements the development reverse proxy that forwards
// backend calls made by the shell to a local tools backend.
package proxy

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/MKhiriev/tool-suite/internal/app"
	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/internal/utils"
	"github.com/go-chi/chi/v5"
)

// NewDevProxy returns a reverse proxy forwarding every request to
// cfg.Target with the path unchanged.
//
// The outbound Host header is rewritten to the target host unless
// cfg.PreserveHost is set. Certificate verification of the target is
// disabled unless cfg.Secure is set. A failed upstream call is answered with
// 502 Bad Gateway.
func NewDevProxy(cfg config.Proxy, log *logger.Logger) (http.Handler, error) {
	target, err := url.Parse(cfg.Target)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, cfg.Target)
	}

	if log == nil {
		log = logger.Nop()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: !cfg.Secure} //nolint:gosec

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			if cfg.PreserveHost {
				pr.Out.Host = pr.In.Host
			}
			pr.SetXForwarded()

			logger.FromContextOr(pr.In.Context(), log).Debug().
				Str("method", pr.In.Method).
				Str("url", pr.In.URL.RequestURI()).
				Str("target", pr.Out.URL.String()).
				Msg("sending request to the target")
		},
		Transport: transport,
		ModifyResponse: func(resp *http.Response) error {
			logger.FromContextOr(resp.Request.Context(), log).Debug().
				Int("status", resp.StatusCode).
				Str("url", resp.Request.URL.RequestURI()).
				Msg("received response from the target")

			setCORSHeaders(resp.Header)
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromContextOr(r.Context(), log).Error().Err(err).
				Str("method", r.Method).
				Str("url", r.URL.RequestURI()).
				Str("target", target.String()).
				Msg("proxy error")

			setCORSHeaders(w.Header())
			utils.WriteError(w, http.StatusBadGateway, "network", app.MsgBackendUnreachable)
		},
	}

	return rp, nil
}

// Mount registers proxy under cfg.Prefix for every method. Preflight
// OPTIONS requests are answered locally.
func Mount(router chi.Router, cfg config.Proxy, proxy http.Handler) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = config.DefaultProxyPrefix
	}

	h := withCORS(proxy)
	router.Handle(prefix, h)
	router.Handle(prefix+"/*", h)
}
