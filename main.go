package main

import (
	"context"

	"campus-show/biz/adaptor"
	"campus-show/biz/infrastructure/config"
	"campus-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	otel.SetTextMapPropagator(b3.New())
	tracer, cfg := hertztracing.NewServerTracer()

	h := server.Default(
		tracer,
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	// 把hertz的RequestContext塞进ctx，后面的service从ctx里取用户信息
	h.Use(func(ctx context.Context, c *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	})

	customizedRegister(h)
	h.Spin()
}
