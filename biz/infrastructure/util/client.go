package util

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"campus-show/biz/infrastructure/config"
	"campus-show/biz/infrastructure/consts"
	"campus-show/biz/infrastructure/storage"
	"campus-show/biz/infrastructure/util/log"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc/codes"
)

// HttpClient 访问上游LMS后端的HTTP客户端
// 所有响应都是 {success: bool, ...payload} 信封，success为false按业务失败处理
// 这里不做任何重试，失败原样抛给调用方
type HttpClient struct {
	Client  *http.Client
	Config  *config.Config
	Session *storage.SessionStore
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient(config *config.Config, session *storage.SessionStore) *HttpClient {
	return &HttpClient{
		Client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Config:  config,
		Session: session,
	}
}

// SendRequest 发送 HTTP 请求并解析信封
func (c *HttpClient) SendRequest(ctx context.Context, method, path string, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("请求体序列化失败: %w", err)
		}
		reader = bytes.NewBuffer(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Config.Api.BackendURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	req.Header.Set("Content-Type", consts.ContentTypeJson)
	req.Header.Set("Charset", consts.CharSetUTF8)
	req.Header.Set(consts.HeaderRequestId, uuid.New().String())
	// 如果是测试环境则向测试环境的后端发送请求
	if c.Config.State == "test" {
		req.Header.Set("X-Campus-Env", "test")
	}
	// 附带已持久化的上游会话令牌
	if sess, err := c.Session.Load(); err == nil && sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		log.CtxError(ctx, "发送请求失败: %v", err)
		return nil, consts.ErrCall
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.CtxError(ctx, "关闭响应失败: %v", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.CtxError(ctx, "读取响应失败: %v", err)
		return nil, consts.ErrCall
	}

	if err := statusToError(resp.StatusCode, responseBody); err != nil {
		return nil, err
	}

	var responseMap map[string]any
	if err := json.Unmarshal(responseBody, &responseMap); err != nil {
		return nil, fmt.Errorf("反序列化响应失败: %w", err)
	}

	// 信封里success为false按业务失败处理
	if !cast.ToBool(responseMap["success"]) {
		msg := cast.ToString(responseMap["message"])
		if msg == "" {
			return nil, consts.ErrCall
		}
		return nil, consts.NewErrno(codes.Unknown, errors.New(msg))
	}

	return responseMap, nil
}

// statusToError 按状态码归类上游错误
// 401/403/404单列，其余4xx透传上游message，5xx统一为上游异常
func statusToError(statusCode int, body []byte) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized:
		return consts.ErrNotAuthentication
	case statusCode == http.StatusForbidden:
		return consts.ErrForbidden
	case statusCode == http.StatusNotFound:
		return consts.ErrNotFound
	case statusCode >= 400 && statusCode < 500:
		var m map[string]any
		_ = json.Unmarshal(body, &m)
		if msg := cast.ToString(m["message"]); msg != "" {
			return consts.NewErrno(codes.InvalidArgument, errors.New(msg))
		}
		return consts.ErrInvalidParams
	default:
		return consts.ErrUpstream
	}
}

// ===== 认证 =====

// SignIn 用户登录
func (c *HttpClient) SignIn(ctx context.Context, email, password string) (map[string]any, error) {
	body := make(map[string]any)
	body["email"] = email
	body["password"] = password
	return c.SendRequest(ctx, consts.Post, "/auth/login", body)
}

// ===== 课程 =====

func (c *HttpClient) ListCourses(ctx context.Context) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/courses", nil)
}

func (c *HttpClient) CreateCourse(ctx context.Context, body map[string]any) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Post, "/courses", body)
}

func (c *HttpClient) GetCourse(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/courses/"+id, nil)
}

func (c *HttpClient) UpdateCourse(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Put, "/courses/"+id, body)
}

func (c *HttpClient) DeleteCourse(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Delete, "/courses/"+id, nil)
}

func (c *HttpClient) EnrollInCourse(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Post, "/courses/"+id+"/enroll", nil)
}

func (c *HttpClient) GetCourseEnrollments(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/courses/"+id+"/enrollments", nil)
}

func (c *HttpClient) GetCourseProgress(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/courses/"+id+"/progress", nil)
}

func (c *HttpClient) GetCourseCertificates(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/courses/"+id+"/certificates", nil)
}

func (c *HttpClient) GetCourseAssignments(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/courses/"+id+"/assignments", nil)
}

func (c *HttpClient) GetCourseVirtualClasses(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/courses/"+id+"/virtual-classes", nil)
}

// ===== 报名 =====

func (c *HttpClient) ListAllEnrollments(ctx context.Context) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/enrollments/all", nil)
}

func (c *HttpClient) GetStudentEnrollments(ctx context.Context, studentId string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/enrollments/students/"+studentId+"/enrollments", nil)
}

func (c *HttpClient) GetEnrollmentsByCourse(ctx context.Context, courseId string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/enrollments/courses/"+courseId+"/enrollments", nil)
}

func (c *HttpClient) EnrollCourse(ctx context.Context, courseId string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Post, "/enrollments/courses/"+courseId+"/enroll", nil)
}

func (c *HttpClient) ApproveEnrollment(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Post, "/enrollments/"+id+"/approve", nil)
}

func (c *HttpClient) RejectEnrollment(ctx context.Context, id string, reason string) (map[string]any, error) {
	body := make(map[string]any)
	if reason != "" {
		body["reason"] = reason
	}
	return c.SendRequest(ctx, consts.Post, "/enrollments/"+id+"/reject", body)
}

func (c *HttpClient) BulkEnroll(ctx context.Context, courseId string, studentIds []string) (map[string]any, error) {
	body := make(map[string]any)
	body["course_id"] = courseId
	body["student_ids"] = studentIds
	return c.SendRequest(ctx, consts.Post, "/enrollments/bulk", body)
}

func (c *HttpClient) UpdateEnrollment(ctx context.Context, id string, status string) (map[string]any, error) {
	body := make(map[string]any)
	body["status"] = status
	return c.SendRequest(ctx, consts.Put, "/enrollments/"+id, body)
}

func (c *HttpClient) DeleteEnrollment(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Delete, "/enrollments/"+id, nil)
}

func (c *HttpClient) GetEnrollmentStats(ctx context.Context) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/enrollments/stats", nil)
}

// ===== 测评 =====

// ListAllAssignments 批量接口，返回扁平行，仅教师和管理员可用
func (c *HttpClient) ListAllAssignments(ctx context.Context) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/assignments/all", nil)
}

func (c *HttpClient) GetAssignmentsByCourse(ctx context.Context, courseId string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/assignments/courses/"+courseId+"/assignments", nil)
}

func (c *HttpClient) GetAssignment(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/assignments/"+id, nil)
}

func (c *HttpClient) UpdateAssignment(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Put, "/assignments/"+id, body)
}

func (c *HttpClient) DeleteAssignment(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Delete, "/assignments/"+id, nil)
}

func (c *HttpClient) StartAttempt(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Post, "/assignments/"+id+"/start", nil)
}

func (c *HttpClient) SubmitAttempt(ctx context.Context, id string, answers []any, sessionToken string) (map[string]any, error) {
	body := make(map[string]any)
	body["answers"] = answers
	body["session_token"] = sessionToken
	return c.SendRequest(ctx, consts.Post, "/assignments/"+id+"/submit", body)
}

func (c *HttpClient) GetMyAttempts(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/assignments/"+id+"/my-attempts", nil)
}

func (c *HttpClient) GetAttempts(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/assignments/"+id+"/attempts", nil)
}

func (c *HttpClient) GetPendingReviews(ctx context.Context, id string) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/assignments/"+id+"/pending-reviews", nil)
}

func (c *HttpClient) ManualGrade(ctx context.Context, attemptId string, score float64, feedback string) (map[string]any, error) {
	body := make(map[string]any)
	body["score"] = score
	if feedback != "" {
		body["general_feedback"] = feedback
	}
	return c.SendRequest(ctx, consts.Post, "/assignments/attempts/"+attemptId+"/manual-grade", body)
}

// ===== 用户配置 =====

func (c *HttpClient) ListAllStudents(ctx context.Context) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/user-config/all-students", nil)
}

func (c *HttpClient) ResetStudentPassword(ctx context.Context, studentId string) (map[string]any, error) {
	body := make(map[string]any)
	body["student_id"] = studentId
	return c.SendRequest(ctx, consts.Patch, "/user-config/reset-student-password", body)
}

func (c *HttpClient) GetMyProfile(ctx context.Context) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Get, "/user-config/my-profile", nil)
}

func (c *HttpClient) UpdateProfile(ctx context.Context, body map[string]any) (map[string]any, error) {
	return c.SendRequest(ctx, consts.Patch, "/user-config/update-profile", body)
}
