package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates the middleware chain for one handler at a time.
// GetAllAndClear hands the chain over and resets, so the same container can
// build every handler's stack in order.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.middlewares
	c.middlewares = nil
	return mws
}
