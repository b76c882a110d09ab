package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignIn            = NewErrno(codes.Code(1001), errors.New("登录失败，请重试"))
	ErrGetCourseList     = NewErrno(codes.Code(1002), errors.New("获取课程列表失败"))
	ErrCreateCourse      = NewErrno(codes.Code(1003), errors.New("创建课程失败"))
	ErrUpdateCourse      = NewErrno(codes.Code(1004), errors.New("更新课程失败"))
	ErrDeleteCourse      = NewErrno(codes.Code(1005), errors.New("删除课程失败"))
	ErrEnroll            = NewErrno(codes.Code(1006), errors.New("报名失败，请重试"))
	ErrGetEnrollments    = NewErrno(codes.Code(1007), errors.New("获取报名记录失败"))
	ErrApproveEnrollment = NewErrno(codes.Code(1008), errors.New("审批报名失败"))
	ErrRejectEnrollment  = NewErrno(codes.Code(1009), errors.New("驳回报名失败"))
	ErrBulkEnroll        = NewErrno(codes.Code(1010), errors.New("批量报名失败"))
	ErrCancelEnrollment  = NewErrno(codes.Code(1011), errors.New("取消报名失败"))
	ErrGetAssignmentList = NewErrno(codes.Code(1012), errors.New("获取测评列表失败"))
	ErrGetAssignment     = NewErrno(codes.Code(1013), errors.New("获取测评详情失败"))
	ErrUpdateAssignment  = NewErrno(codes.Code(1014), errors.New("更新测评失败"))
	ErrDeleteAssignment  = NewErrno(codes.Code(1015), errors.New("删除测评失败"))
	ErrStartAttempt      = NewErrno(codes.Code(1016), errors.New("开始测评失败"))
	ErrSubmitAttempt     = NewErrno(codes.Code(1017), errors.New("提交测评失败"))
	ErrAttemptNotAllowed = NewErrno(codes.Code(1018), errors.New("当前测评不可作答"))
	ErrGetAttempts       = NewErrno(codes.Code(1019), errors.New("获取作答记录失败"))
	ErrManualGrade       = NewErrno(codes.Code(1020), errors.New("人工评分失败"))
	ErrSaveDraft         = NewErrno(codes.Code(1021), errors.New("保存草稿失败"))
	ErrGetStudents       = NewErrno(codes.Code(1022), errors.New("获取学生列表失败"))
	ErrResetPassword     = NewErrno(codes.Code(1023), errors.New("重置密码失败"))
	ErrGetProfile        = NewErrno(codes.Code(1024), errors.New("获取个人信息失败"))
	ErrUpdateProfile     = NewErrno(codes.Code(1025), errors.New("更新个人信息失败"))
	ErrGetProgress       = NewErrno(codes.Code(1026), errors.New("获取学习进度失败"))
	ErrGetCertificates   = NewErrno(codes.Code(1027), errors.New("获取证书失败"))
	ErrGetStats          = NewErrno(codes.Code(1028), errors.New("获取统计数据失败"))
)

// 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("调用接口失败，请重试"))
	ErrUpstream      = NewErrno(codes.Internal, errors.New("上游服务异常，请稍后重试"))
	ErrOneSubmit     = NewErrno(codes.Code(3001), errors.New("该测评正在提交中，请勿重复提交"))
)

// 数据相关错误
var (
	ErrNotFound = NewErrno(codes.NotFound, errors.New("not found"))
)
