package campus

import (
	"context"

	"campus-show/biz/adaptor"
	"campus-show/biz/application/dto/campus/show"
	"campus-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func ListCourses(ctx context.Context, c *app.RequestContext) {
	var req show.ListCoursesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.ListCourses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func CreateCourse(ctx context.Context, c *app.RequestContext) {
	var req show.CreateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.CreateCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetCourse(ctx context.Context, c *app.RequestContext) {
	var req show.GetCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.GetCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateCourse(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.UpdateCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteCourse(ctx context.Context, c *app.RequestContext) {
	var req show.DeleteCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.DeleteCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func EnrollInCourse(ctx context.Context, c *app.RequestContext) {
	var req show.EnrollInCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.EnrollInCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetCourseAssignments(ctx context.Context, c *app.RequestContext) {
	var req show.GetCourseRelationReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.GetCourseAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetCourseProgress(ctx context.Context, c *app.RequestContext) {
	var req show.GetCourseRelationReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.GetCourseProgress(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetCourseCertificates(ctx context.Context, c *app.RequestContext) {
	var req show.GetCourseRelationReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.GetCourseCertificates(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetCourseVirtualClasses(ctx context.Context, c *app.RequestContext) {
	var req show.GetCourseRelationReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.GetCourseVirtualClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetCourseEnrollments(ctx context.Context, c *app.RequestContext) {
	var req show.GetCourseEnrollmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.GetCourseEnrollments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
