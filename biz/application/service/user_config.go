package service

import (
	"context"

	"campus-show/biz/adaptor"
	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/application/dto/campus/show"
	"campus-show/biz/infrastructure/consts"
	"campus-show/biz/infrastructure/storage"
	"campus-show/biz/infrastructure/util"
	"campus-show/biz/infrastructure/util/log"
	"campus-show/biz/infrastructure/util/permission"

	"github.com/google/wire"
	"github.com/spf13/cast"
)

type IUserConfigService interface {
	SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error)
	SignOut(ctx context.Context, req *show.SignOutReq) (*show.Response, error)
	ListAllStudents(ctx context.Context, req *show.ListAllStudentsReq) (*show.ListAllStudentsResp, error)
	ResetStudentPassword(ctx context.Context, req *show.ResetStudentPasswordReq) (*show.Response, error)
	GetMyProfile(ctx context.Context, req *show.GetMyProfileReq) (*show.GetMyProfileResp, error)
	UpdateProfile(ctx context.Context, req *show.UpdateProfileReq) (*show.Response, error)
}

type UserConfigService struct {
	HttpClient   *util.HttpClient
	SessionStore *storage.SessionStore
}

var UserConfigServiceSet = wire.NewSet(
	wire.Struct(new(UserConfigService), "*"),
	wire.Bind(new(IUserConfigService), new(*UserConfigService)),
)

// SignIn 登录上游并持久化会话，返回网关自己签发的jwt
func (s *UserConfigService) SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error) {
	if req.Email == "" || req.Password == "" {
		return nil, consts.ErrInvalidParams
	}

	data, err := s.HttpClient.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		log.CtxError(ctx, "登录失败: %v", err)
		return nil, err
	}

	upstreamToken := cast.ToString(data["token"])
	u := new(lms.User)
	if err := lms.Decode(data["user"], u); err != nil {
		log.CtxError(ctx, "解析用户信息失败: %v", err)
		return nil, consts.ErrSignIn
	}

	if err := s.SessionStore.Save(&storage.Session{Token: upstreamToken, User: u}); err != nil {
		log.CtxError(ctx, "持久化会话失败: %v", err)
		return nil, consts.ErrSignIn
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.Id, u.Role)
	if err != nil {
		log.CtxError(ctx, "签发token失败: %v", err)
		return nil, consts.ErrSignIn
	}

	log.CtxInfo(ctx, "登录成功 [UserId: %s, Role: %s]", u.Id, u.Role)
	return &show.SignInResp{
		Id:           u.Id,
		Name:         u.Name,
		Role:         u.Role,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
	}, nil
}

// SignOut 登出，清掉本地会话
func (s *UserConfigService) SignOut(ctx context.Context, req *show.SignOutReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.SessionStore.Clear(); err != nil {
		log.CtxError(ctx, "清除会话失败: %v", err)
		return nil, consts.ErrCall
	}
	return &show.Response{Success: true, Msg: "已登出"}, nil
}

// ListAllStudents 获取学生列表，仅管理员可用
func (s *UserConfigService) ListAllStudents(ctx context.Context, req *show.ListAllStudentsReq) (*show.ListAllStudentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanManageStudents() {
		return nil, consts.ErrForbidden
	}

	data, err := s.HttpClient.ListAllStudents(ctx)
	if err != nil {
		log.CtxError(ctx, "获取学生列表失败: %v", err)
		return nil, err
	}

	var students []*lms.User
	if err := lms.Decode(data["students"], &students); err != nil {
		return nil, consts.ErrGetStudents
	}
	return &show.ListAllStudentsResp{
		Total:    int64(len(students)),
		Students: students,
	}, nil
}

// ResetStudentPassword 重置学生密码，仅管理员可用
func (s *UserConfigService) ResetStudentPassword(ctx context.Context, req *show.ResetStudentPasswordReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	perm := permission.New(meta.GetRole(), meta.GetUserId())
	if !perm.CanManageStudents() {
		return nil, consts.ErrForbidden
	}
	if req.StudentId == "" {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.HttpClient.ResetStudentPassword(ctx, req.StudentId); err != nil {
		log.CtxError(ctx, "重置密码失败: %v", err)
		return nil, err
	}

	log.CtxInfo(ctx, "密码已重置 [StudentId: %s, OperatorId: %s]", req.StudentId, meta.GetUserId())
	return &show.Response{Success: true, Msg: "密码已重置"}, nil
}

// GetMyProfile 获取个人信息及能力开关
func (s *UserConfigService) GetMyProfile(ctx context.Context, req *show.GetMyProfileReq) (*show.GetMyProfileResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	data, err := s.HttpClient.GetMyProfile(ctx)
	if err != nil {
		log.CtxError(ctx, "获取个人信息失败: %v", err)
		return nil, err
	}

	u := new(lms.User)
	if err := lms.Decode(data["user"], u); err != nil {
		return nil, consts.ErrGetProfile
	}

	perm := permission.New(u.Role, u.Id)
	return &show.GetMyProfileResp{
		User:        u,
		Permissions: permissionInfo(perm, u.Id),
	}, nil
}

// UpdateProfile 更新个人信息，成功后同步本地会话里的用户快照
func (s *UserConfigService) UpdateProfile(ctx context.Context, req *show.UpdateProfileReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	body := make(map[string]any)
	if req.Name != nil {
		body["name"] = *req.Name
	}
	if req.Email != nil {
		body["email"] = *req.Email
	}
	if len(body) == 0 {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.HttpClient.UpdateProfile(ctx, body); err != nil {
		log.CtxError(ctx, "更新个人信息失败: %v", err)
		return nil, err
	}

	// 会话快照同步失败不影响本次更新结果
	if sess, err := s.SessionStore.Load(); err == nil && sess != nil && sess.User != nil {
		if req.Name != nil {
			sess.User.Name = *req.Name
		}
		if req.Email != nil {
			sess.User.Email = *req.Email
		}
		if err := s.SessionStore.Save(sess); err != nil {
			log.CtxInfo(ctx, "同步会话快照失败: %v", err)
		}
	}
	return &show.Response{Success: true, Msg: "更新成功"}, nil
}
