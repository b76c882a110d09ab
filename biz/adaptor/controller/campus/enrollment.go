package campus

import (
	"context"

	"campus-show/biz/adaptor"
	"campus-show/biz/application/dto/campus/show"
	"campus-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func ListAllEnrollments(ctx context.Context, c *app.RequestContext) {
	var req show.ListAllEnrollmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.ListAllEnrollments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetStudentEnrollments(ctx context.Context, c *app.RequestContext) {
	var req show.GetStudentEnrollmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.GetStudentEnrollments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetEnrollmentsByCourse(ctx context.Context, c *app.RequestContext) {
	var req show.GetCourseEnrollmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.GetCourseEnrollments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func EnrollCourse(ctx context.Context, c *app.RequestContext) {
	var req show.EnrollCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.EnrollCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ApproveEnrollment(ctx context.Context, c *app.RequestContext) {
	var req show.ApproveEnrollmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.ApproveEnrollment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func RejectEnrollment(ctx context.Context, c *app.RequestContext) {
	var req show.RejectEnrollmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.RejectEnrollment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func BulkEnroll(ctx context.Context, c *app.RequestContext) {
	var req show.BulkEnrollReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.BulkEnroll(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateEnrollment(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateEnrollmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.UpdateEnrollment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func CancelEnrollment(ctx context.Context, c *app.RequestContext) {
	var req show.CancelEnrollmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.CancelEnrollment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetEnrollmentStats(ctx context.Context, c *app.RequestContext) {
	var req show.ListAllEnrollmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.GetEnrollmentStats(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
