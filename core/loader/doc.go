// Package loader registers the HTTP features of the server.
//
// Each feature implements Feature: a name for logs, an enabled flag and a Load hook that
// mounts its routes. The serve command registers the features with a Manager and calls
// LoadAll once the middleware stack is in place.
//
//	mgr := loader.NewManager(log)
//	mgr.Register(checks.NewFeature(log, workers))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader
