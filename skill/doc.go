// Package skill implements the request dispatcher of a voice skill.
//
// A Skill holds an explicit, ordered route table of (name, handler) pairs,
// request interceptors that run before routing, response interceptors that run
// after it and error handlers that turn failures into a spoken reply. For each
// request exactly one route handler runs, or an error handler runs in its
// place.
//
// Usage:
//
//	s := skill.New(func(o *skill.Options) {
//	    o.Routes = []skill.Route{{Name: "Launch", Handler: launch}}
//	    o.ErrorHandlers = []core.ErrorHandler{apology}
//	    o.Store = persistence.NewInMemoryStore()
//	})
//	resp, err := s.Invoke(ctx, envelope)
package skill
