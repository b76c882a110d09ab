package campus

import (
	"context"

	"campus-show/biz/adaptor"
	"campus-show/biz/application/dto/campus/show"
	"campus-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func ListAllAssignments(ctx context.Context, c *app.RequestContext) {
	var req show.ListAllAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.ListAllAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListCourseAssignments(ctx context.Context, c *app.RequestContext) {
	var req show.ListCourseAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.ListCourseAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.GetAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.UpdateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.DeleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.DeleteAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func StartAttempt(ctx context.Context, c *app.RequestContext) {
	var req show.StartAttemptReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.StartAttempt(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func SubmitAttempt(ctx context.Context, c *app.RequestContext) {
	var req show.SubmitAttemptReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.SubmitAttempt(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetMyAttempts(ctx context.Context, c *app.RequestContext) {
	var req show.GetMyAttemptsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetMyAttempts(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetAttempts(ctx context.Context, c *app.RequestContext) {
	var req show.GetAttemptsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetAttempts(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetPendingReviews(ctx context.Context, c *app.RequestContext) {
	var req show.GetPendingReviewsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetPendingReviews(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ManualGrade(ctx context.Context, c *app.RequestContext) {
	var req show.ManualGradeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.ManualGrade(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func SaveDraft(ctx context.Context, c *app.RequestContext) {
	var req show.SaveDraftReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.SaveDraft(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetDraft(ctx context.Context, c *app.RequestContext) {
	var req show.GetDraftReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetDraft(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
