package campus

import (
	"context"

	"campus-show/biz/adaptor"
	"campus-show/biz/application/dto/campus/show"
	"campus-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func SignIn(ctx context.Context, c *app.RequestContext) {
	var req show.SignInReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserConfigService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func SignOut(ctx context.Context, c *app.RequestContext) {
	var req show.SignOutReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserConfigService.SignOut(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListAllStudents(ctx context.Context, c *app.RequestContext) {
	var req show.ListAllStudentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserConfigService.ListAllStudents(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ResetStudentPassword(ctx context.Context, c *app.RequestContext) {
	var req show.ResetStudentPasswordReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserConfigService.ResetStudentPassword(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetMyProfile(ctx context.Context, c *app.RequestContext) {
	var req show.GetMyProfileReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserConfigService.GetMyProfile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateProfileReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserConfigService.UpdateProfile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
