// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

/*
Package supervisor provides process supervision for Inflection using suture v4.

The tree has two layers:

	RootSupervisor ("inflection")
	├── DataSupervisor ("data-layer")
	│   ├── CacheWarmerService (if cache.warm_on_start or cache.warm_interval)
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Services that return an error are restarted with suture's backoff
(FailureThreshold, FailureDecay, FailureBackoff). Supervisor events are
logged through sutureslog into the zerolog-backed slog logger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)
*/
package supervisor
