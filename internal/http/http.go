// Copyright 2024 The Ontograph Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package http serves the JSON API of the semantic backend.
package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ontograph/ontograph"
	"github.com/ontograph/ontograph/clog"
)

// NewRouter builds the API router for a handle.
func NewRouter(h *ontograph.Handle) *httprouter.Router {
	api := &API{handle: h}
	r := httprouter.New()
	r.POST("/api/v1/query", api.ServeQuery)
	r.GET("/api/v1/export", api.ServeExport)
	r.GET("/api/v1/health", api.ServeHealth)
	r.Handler("GET", "/metrics", promhttp.Handler())
	return r
}

// ListenAndServe runs the API server until it fails.
func ListenAndServe(addr string, h *ontograph.Handle) error {
	clog.Infof("listening on %s, web access at http://%s", addr, addr)
	return http.ListenAndServe(addr, NewRouter(h))
}
