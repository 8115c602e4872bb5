// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// the listener fails. Shutdown waits for in-flight requests up to the
// configured timeout.
//
//	var cfg httpserver.Config
//	if err := config.LoadValid(&cfg, httpserver.ConfigRule()); err != nil {
//		return err
//	}
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	return srv.Run(ctx, router)
package httpserver
